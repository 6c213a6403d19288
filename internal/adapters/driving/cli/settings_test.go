package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Entity: Songs (song)")
	assert.Contains(t, out, "Limit: 25")
	assert.Contains(t, out, "Base URL: "+domain.DefaultCatalogBaseURL)
	assert.Contains(t, out, "Timeout: 30s")
	assert.Contains(t, out, "Theme: light")
}

func TestSettingsCmd_ShowStoredValues(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, env.config.Set("search.entity", "podcast"))
	require.NoError(t, env.config.Set("catalog.timeout_seconds", 0))
	require.NoError(t, env.config.Set("ui.theme", "dark"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Entity: Podcasts (podcast)")
	assert.Contains(t, out, "Timeout: none")
	assert.Contains(t, out, "Theme: dark")
}

func TestSettingsWizard_KeepsDefaultsOnEnter(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader("\n\n\n\n\n"))
	rootCmd.SetArgs([]string{"settings", "wizard"})

	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "song", env.config.GetString("search.entity"))
	assert.Equal(t, 25, env.config.GetInt("search.limit"))
	assert.Equal(t, domain.DefaultCatalogBaseURL, env.config.GetString("catalog.base_url"))
	assert.Equal(t, 30, env.config.GetInt("catalog.timeout_seconds"))
	assert.Equal(t, "light", env.config.GetString("ui.theme"))
}

func TestSettingsWizard_SavesAnswers(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("2\n50\nhttp://localhost:9000/search\n5\n2\n"))
	rootCmd.SetArgs([]string{"settings", "wizard"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "All settings are valid and saved.")

	settings, err := active.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.EntityAlbum, settings.Search.Entity)
	assert.Equal(t, 50, settings.Search.Limit)
	assert.Equal(t, "http://localhost:9000/search", settings.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, settings.Catalog.Timeout)
	assert.Equal(t, domain.ThemeDark, settings.UI.Theme)
}

func TestSettingsWizard_RejectsBadBaseURL(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader("\n\nnot a url\n"))
	rootCmd.SetArgs([]string{"settings", "wizard"})

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, saved := env.config.Get("search.entity")
	assert.False(t, saved)
}

func TestSettingsWizard_RejectsNegativeTimeout(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader("\n\n\n-1\n"))
	rootCmd.SetArgs([]string{"settings", "wizard"})

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidateBaseURL(t *testing.T) {
	assert.NoError(t, validateBaseURL("https://itunes.apple.com/search"))
	assert.NoError(t, validateBaseURL("http://127.0.0.1:8080/search"))
	assert.Error(t, validateBaseURL("ftp://example.com"))
	assert.Error(t, validateBaseURL("/search"))
	assert.Error(t, validateBaseURL("https://"))
}

func TestFormatTimeout(t *testing.T) {
	assert.Equal(t, "none", formatTimeout(0))
	assert.Equal(t, "30s", formatTimeout(30*time.Second))
	assert.Equal(t, "1m30s", formatTimeout(90*time.Second))
}

func TestReadLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  hello  \nsecond"))
	assert.Equal(t, "hello", readLine(reader))
	assert.Equal(t, "second", readLine(reader))
	assert.Equal(t, "", readLine(reader))
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{name: "Empty input returns default", input: "", maxVal: 5, defaultVal: 1, expected: 1},
		{name: "Valid choice within range", input: "3", maxVal: 5, defaultVal: 1, expected: 3},
		{name: "Choice below minimum returns default", input: "0", maxVal: 5, defaultVal: 1, expected: 1},
		{name: "Choice above maximum returns default", input: "6", maxVal: 5, defaultVal: 2, expected: 2},
		{name: "Non-numeric returns default", input: "abc", maxVal: 5, defaultVal: 1, expected: 1},
		{name: "Maximum accepted", input: "200", maxVal: 200, defaultVal: 25, expected: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}
