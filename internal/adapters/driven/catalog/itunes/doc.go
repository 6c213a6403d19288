// Package itunes implements driven.CatalogProvider against the public
// iTunes Search API.
//
// Each Search issues exactly one GET request of the form
//
//	<base-url>?term=<percent-encoded>&entity=<kind>&limit=<n>
//
// and decodes the JSON envelope {"resultCount": n, "results": [...]}.
// The client does not retry, cache or rate limit.
package itunes
