package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingSearchController,
		ErrMissingPresenter,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingSearchController_Message(t *testing.T) {
	assert.Contains(t, ErrMissingSearchController.Error(), "search controller")
}

func TestErrMissingPresenter_Message(t *testing.T) {
	assert.Contains(t, ErrMissingPresenter.Error(), "presenter")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
