package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_Valid(t *testing.T) {
	path := writeConfig(t, `
baseURL: http://localhost:5454
restaurantID: 1
token: abc123
`)

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5454", cfg.BaseURL)
	assert.Equal(t, int64(1), cfg.RestaurantID)
	assert.Equal(t, "abc123", cfg.Token)
}

func TestLoadFromPath_MissingBaseURL(t *testing.T) {
	path := writeConfig(t, `
restaurantID: 1
`)

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "baseURL: [unclosed")

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
baseURL: http://localhost:5454
restaurantID: 1
token: from-file
`)
	t.Setenv("SHIFTDESK_BASE_URL", "http://staging.internal:5454")
	t.Setenv("SHIFTDESK_TOKEN", "from-env")

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "http://staging.internal:5454", cfg.BaseURL)
	assert.Equal(t, "from-env", cfg.Token)
}

func TestLoadFromPath_FileMissing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
