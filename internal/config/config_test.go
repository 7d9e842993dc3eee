package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.API.URL)
	assert.Equal(t, ModeDevelopment, cfg.API.Mode)
	assert.Equal(t, "http://localhost:8080", cfg.API.Origin)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.True(t, cfg.Features.Rewrite)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
	assert.Equal(t, "http://localhost:8000", cfg.Serve.Upstream)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000", "http://localhost:5174"}, cfg.Serve.CORSOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "wtc.log", filepath.Base(cfg.Logging.File))
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.True(t, cfg.UI.AltScreen)
	assert.False(t, cfg.Serve.TLS)
	assert.Equal(t, "certs", filepath.Base(cfg.Serve.CertDir))
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  url: https://classifier.example.com
  mode: production
  timeout: 15s
features:
  rewrite: false
serve:
  cors_origins: "https://a.example.com, https://b.example.com"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "https://classifier.example.com", cfg.API.URL)
	assert.Equal(t, ModeProduction, cfg.API.Mode)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Features.Rewrite)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Serve.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		set  func(*viper.Viper)
		name string
	}{
		{name: "bad mode", set: func(v *viper.Viper) { v.Set("api.mode", "staging") }},
		{name: "negative timeout", set: func(v *viper.Viper) { v.Set("api.timeout", "-1s") }},
		{name: "production without origin", set: func(v *viper.Viper) {
			v.Set("api.mode", "production")
			v.Set("api.origin", "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			tt.set(v)
			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("WTC_TEST_DIR", "/tmp/wtc")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "logs/wtc.log"), ExpandPath("~/logs/wtc.log"))
	assert.Equal(t, "/tmp/wtc/wtc.log", ExpandPath("$WTC_TEST_DIR/wtc.log"))
}
