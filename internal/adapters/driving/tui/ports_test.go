package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/tunesearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tunesearch/internal/core/services"
)

func TestNewPorts(t *testing.T) {
	controller := services.NewSearchTableController(nil, nil)
	settings := services.NewSettingsService(memory.NewConfigStore())
	actions := services.NewResultActionService()

	ports := NewPorts(controller, settings, actions)

	assert.Equal(t, controller, ports.Search)
	assert.Equal(t, settings, ports.Settings)
	assert.Equal(t, actions, ports.ResultAction)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "nil ports",
			ports:   nil,
			wantErr: ErrInvalidPorts,
		},
		{
			name:    "missing controller",
			ports:   &Ports{},
			wantErr: ErrMissingSearchController,
		},
		{
			name:  "controller only",
			ports: &Ports{Search: services.NewSearchTableController(nil, nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
