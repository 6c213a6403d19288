package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrValidation", ErrValidation},
		{"ErrFetch", ErrFetch},
		{"ErrEmptyResults", ErrEmptyResults},
		{"ErrSuperseded", ErrSuperseded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestSearchError_KindsAreMutuallyExclusive(t *testing.T) {
	errs := []error{
		NewValidationError(MessageEmptyTerm, nil),
		NewFetchError(errors.New("dial tcp: connection refused")),
		NewEmptyResultsError(),
	}
	kinds := []error{ErrValidation, ErrFetch, ErrEmptyResults}

	for i, err := range errs {
		for j, kind := range kinds {
			assert.Equal(t, i == j, errors.Is(err, kind), "error %d kind %d", i, j)
		}
	}
}

func TestNewFetchError_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp 1.2.3.4:443: connection refused")
	err := NewFetchError(cause)

	assert.Equal(t, MessageFetchFailed, err.Error())
	assert.NotContains(t, err.Error(), "dial tcp")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrFetch)
}

func TestSearchError_As(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", NewEmptyResultsError())

	var se *SearchError
	require.True(t, errors.As(wrapped, &se))
	assert.Equal(t, MessageNoResults, se.Message)
}

func TestSearchError_ErrorFallbacks(t *testing.T) {
	assert.Equal(t, "fetch failed", (&SearchError{Kind: ErrFetch}).Error())
	assert.Equal(t, "search failed", (&SearchError{}).Error())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError(MessageEmptyTerm, nil), MessageEmptyTerm},
		{"empty", NewEmptyResultsError(), MessageNoResults},
		{"wrapped fetch", fmt.Errorf("x: %w", NewFetchError(nil)), MessageFetchFailed},
		{"raw error", errors.New("unexpected EOF"), MessageFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserMessage(tt.err))
		})
	}
}
