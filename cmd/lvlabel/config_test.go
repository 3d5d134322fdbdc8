package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/label"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	opts, err := cfg.decodeOptions()
	require.NoError(t, err)
	assert.Equal(t, '0', opts.Background)
	assert.Equal(t, '1', opts.Foreground)

	conns, err := cfg.connectivities()
	require.NoError(t, err)
	assert.Equal(t, []label.Connectivity{label.Conn4, label.Conn8}, conns)
}

func TestLoadConfig_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlabel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"background: \".\"\nforeground: \"#\"\nconnectivity: \"8\"\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	opts, err := cfg.decodeOptions()
	require.NoError(t, err)
	assert.Equal(t, '.', opts.Background)
	assert.Equal(t, '#', opts.Foreground)
	// Untouched fields keep their defaults.
	assert.Equal(t, uint8(128), cfg.Threshold)

	conns, err := cfg.connectivities()
	require.NoError(t, err)
	assert.Equal(t, []label.Connectivity{label.Conn8}, conns)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connectivity: ["), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestConfig_BadRunes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Foreground = "##"
	_, err := cfg.decodeOptions()
	assert.Error(t, err)

	cfg = defaultConfig()
	cfg.Background = ""
	_, err = cfg.decodeOptions()
	assert.Error(t, err)
}

func TestConfig_BadConnectivity(t *testing.T) {
	cfg := defaultConfig()
	cfg.Connectivity = "6"
	_, err := cfg.connectivities()
	assert.Error(t, err)
}
