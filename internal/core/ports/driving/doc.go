// Package driving defines interfaces that external actors (TUI, CLI, MCP) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Implementations of these interfaces live in internal/core/services.
// Presenter is the exception: it is implemented by each driving adapter
// and called by the core to report search progress.
package driving
