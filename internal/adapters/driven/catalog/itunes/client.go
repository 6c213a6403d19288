package itunes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
	"github.com/custodia-labs/tunesearch/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CatalogProvider = (*Client)(nil)

const (
	// DefaultTimeout bounds a whole request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// maxResponseBytes caps the decoded body size.
	maxResponseBytes = 10 << 20

	userAgent = "tunesearch"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// Client queries the iTunes Search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL, or the public endpoint when
// baseURL is empty.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = domain.DefaultCatalogBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base URL: %v", domain.ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: base URL %q must be http or https", domain.ErrInvalidInput, baseURL)
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the endpoint the client queries.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search issues one request for query and decodes the results.
// Entries are returned in provider order.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error) {
	reqURL, err := c.searchURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	logger.Debug("GET %s -> %d (%s)", reqURL, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body searchResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("decoding response: body truncated or larger than %d bytes: %w", maxResponseBytes, err)
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	items := make([]domain.ResultItem, 0, len(body.Results))
	for _, r := range body.Results {
		items = append(items, r.toDomain())
	}
	if body.ResultCount != len(items) {
		logger.Debug("resultCount %d differs from %d decoded results", body.ResultCount, len(items))
	}
	return items, nil
}

// searchURL builds the request URL. Spaces are encoded as %20 rather
// than '+' so the term is percent-encoded throughout.
func (c *Client) searchURL(query domain.SearchQuery) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	params := u.Query()
	params.Set("term", query.Term)
	params.Set("entity", query.Entity.String())
	params.Set("limit", strconv.Itoa(query.Limit))
	// A literal '+' in the term is already encoded as %2B.
	u.RawQuery = strings.ReplaceAll(params.Encode(), "+", "%20")

	return u.String(), nil
}
