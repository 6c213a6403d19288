package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tunesearch/internal/core/services"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search controller returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchController)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: services.NewSearchTableController(&mockCatalog{}, nil),
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search controller returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchController)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{
			Search: services.NewSearchTableController(&mockCatalog{}, nil),
		}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		server, _ := newTestServer(&mockCatalog{}, &mockHistoryService{})
		assert.NoError(t, server.ports.Validate())
	})
}

func TestServer_InMemorySession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, _ := newTestServer(&mockCatalog{items: testItems()}, &mockHistoryService{})

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	t.Run("lists tools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err)

		names := make([]string, 0, len(tools.Tools))
		for _, tool := range tools.Tools {
			names = append(names, tool.Name)
		}
		assert.ElementsMatch(t, []string{"search_catalog", "recent_searches"}, names)
	})

	t.Run("search succeeds", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "search_catalog",
			Arguments: map[string]any{"term": "abba"},
		})
		require.NoError(t, err)
		assert.False(t, result.IsError)
	})

	t.Run("validation failure is a tool error", func(t *testing.T) {
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "search_catalog",
			Arguments: map[string]any{"term": "   "},
		})
		require.NoError(t, err)
		require.True(t, result.IsError)
		require.NotEmpty(t, result.Content)

		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, text.Text, "Please enter a search term")
	})
}
