package tui

import "errors"

// ErrMissingSearchController is returned when the search controller is not provided.
var ErrMissingSearchController = errors.New("tui: search controller is required")

// ErrMissingPresenter is returned when no presenter is provided.
var ErrMissingPresenter = errors.New("tui: presenter is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
