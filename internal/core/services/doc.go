// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SearchTableController is the centre of the application: it owns the
// displayed result set and its sort order, and reports progress through
// a driving.Presenter supplied by each adapter.
package services
