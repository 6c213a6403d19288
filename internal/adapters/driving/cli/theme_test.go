package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

func TestThemeCmd_DefaultIsLight(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"theme"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "light\n", buf.String())
}

func TestThemeCmd_Set(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"theme", "set", "dark"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Theme set to dark")
	assert.Equal(t, "dark", env.config.GetString("ui.theme"))

	buf.Reset()
	rootCmd.SetArgs([]string{"theme", "get"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "dark\n", buf.String())
}

func TestThemeCmd_SetRejectsUnknownTheme(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"theme", "set", "solarized"})

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.config.GetString("ui.theme"))
}

func TestThemeCmd_SetRequiresOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"theme", "set"})

	assert.Error(t, rootCmd.Execute())
}

func TestThemeCmd_ToggleTwiceRestores(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	rootCmd.SetArgs([]string{"theme", "toggle"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Theme set to dark")
	assert.Equal(t, "dark", env.config.GetString("ui.theme"))

	buf.Reset()
	rootCmd.SetArgs([]string{"theme", "toggle"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Theme set to light")
	assert.Equal(t, "light", env.config.GetString("ui.theme"))
}
