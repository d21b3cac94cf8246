package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/sweep/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := &config.Config{}

	assert.True(t, cfg.ConfirmDelete())
	assert.Equal(t, config.DefaultScanTop, cfg.ScanTop())
	assert.True(t, cfg.LogEnabled())
}

func TestPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".sweep", "config.yaml"), config.Path())
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.ConfirmDelete())
	assert.Equal(t, config.DefaultScanTop, cfg.ScanTop())
}

func TestLoad_Malformed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".sweep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".sweep", "config.yaml"), []byte("scan: ["), 0644))

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed config file")
}

func TestLoad_InvalidValue(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".sweep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".sweep", "config.yaml"), []byte("scan:\n  top: 0\n"), 0644))

	_, err := config.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Set("confirm.delete", "false"))
	require.NoError(t, cfg.Set("scan.top", "25"))
	require.NoError(t, cfg.Save())

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.False(t, loaded.ConfirmDelete())
	assert.Equal(t, 25, loaded.ScanTop())
	assert.True(t, loaded.LogEnabled())
}

func TestGet(t *testing.T) {
	cfg := &config.Config{}

	v, err := cfg.Get("scan.top")
	require.NoError(t, err)
	assert.Equal(t, "10", v)

	v, err = cfg.Get("confirm.delete")
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	_, err = cfg.Get("no.such.key")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"confirm delete", "confirm.delete", "false", nil},
		{"confirm delete case insensitive", "confirm.delete", "TRUE", nil},
		{"confirm delete invalid", "confirm.delete", "maybe", config.ErrInvalidValue},
		{"scan top", "scan.top", "50", nil},
		{"scan top too low", "scan.top", "0", config.ErrInvalidValue},
		{"scan top too high", "scan.top", "1001", config.ErrInvalidValue},
		{"scan top not a number", "scan.top", "many", config.ErrInvalidValue},
		{"log enabled", "log.enabled", "false", nil},
		{"unknown key", "no.such.key", "x", config.ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, cfg.IsSet(tt.key))
		})
	}
}

func TestAll(t *testing.T) {
	cfg := &config.Config{}
	all := cfg.All()

	assert.Len(t, all, len(config.ValidKeys()))
	for _, key := range config.ValidKeys() {
		assert.Contains(t, all, key)
	}
}

func TestIsValidKey(t *testing.T) {
	assert.True(t, config.IsValidKey("scan.top"))
	assert.False(t, config.IsValidKey("scan"))
}
