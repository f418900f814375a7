package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docchat", "config.json")

	config, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", config.ServerURL)
	assert.Equal(t, 60, config.RequestTimeout)

	// The default config now exists on disk.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestParseExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"server_url": "http://chat.internal:8080", "request_timeout": 15}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "http://chat.internal:8080", config.ServerURL)
	assert.Equal(t, 15, config.RequestTimeout)
}

func TestParseFillsMissingServerURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"request_timeout": 0}`), 0644))

	config, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", config.ServerURL)
	assert.Equal(t, 0, config.RequestTimeout)
}

func TestParseRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Parse(path)
	require.Error(t, err)
}
