package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestInitialize_NoFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "/maskit/api/process", cfg.API.ProcessPath)
	assert.Equal(t, EncodingForm, cfg.API.Encoding)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
	assert.True(t, cfg.Display.ShowOriginals)
	assert.True(t, cfg.Display.ShowHighlighting)
}

func TestInitialize_MergesUserValues(t *testing.T) {
	dir := writeConfig(t, `
server:
  http_port: "9090"
  session_ttl: 30m
api:
  base_url: http://localhost:8001/
  encoding: json
  normalize_input: true
  timeout: 10s
display:
  show_originals: false
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.Server.CleanupInterval, "unset values keep defaults")

	assert.Equal(t, "http://localhost:8001", cfg.API.BaseURL, "trailing slash trimmed")
	assert.Equal(t, EncodingJSON, cfg.API.Encoding)
	assert.True(t, cfg.API.NormalizeInput)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/maskit/api/info", cfg.API.InfoPath)

	assert.False(t, cfg.Display.ShowOriginals)
	assert.True(t, cfg.Display.ShowHighlighting)
}

func TestInitialize_ExpandsEnvironment(t *testing.T) {
	t.Setenv("MASKIT_TEST_URL", "https://maskit.example.org")
	dir := writeConfig(t, "api:\n  base_url: {{.MASKIT_TEST_URL}}\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://maskit.example.org", cfg.API.BaseURL)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.True(t, errors.Is(err, ErrInvalidYAML))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, FileName, loadErr.File)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	dir := writeConfig(t, "api:\n  encoding: xml\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")

	var validErr *ValidationError
	require.True(t, errors.As(err, &validErr))
	assert.Equal(t, "api", validErr.Section)
	assert.Equal(t, "encoding", validErr.Field)
}
