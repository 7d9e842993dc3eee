package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/spf13/viper"
)

// Config holds every setting the application reads at startup.
type Config struct {
	Logging  LoggingConfig
	API      APIConfig
	Serve    ServeConfig
	Features FeatureConfig
	UI       UIConfig
}

// APIConfig describes how to reach the classification service.
type APIConfig struct {
	URL     string
	Origin  string
	Mode    Mode
	Timeout time.Duration
}

// FeatureConfig toggles optional parts of the product.
type FeatureConfig struct {
	Rewrite bool
}

// UIConfig configures the terminal front-end.
type UIConfig struct {
	Theme     string
	AltScreen bool
}

// ServeConfig configures the web front-end.
type ServeConfig struct {
	Addr        string
	Upstream    string
	CertDir     string
	CORSOrigins []string
	TLS         bool
}

// LoggingConfig configures slog.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.url", "")
	v.SetDefault("api.mode", string(ModeDevelopment))
	v.SetDefault("api.origin", "http://localhost:8080")
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("features.rewrite", true)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("serve.addr", ":8080")
	v.SetDefault("serve.upstream", DevelopmentBaseURL)
	v.SetDefault("serve.tls", false)
	v.SetDefault("serve.cert_dir", filepath.Join(Dir(), "certs"))
	v.SetDefault("serve.cors_origins", []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://localhost:5174",
	})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", filepath.Join(Dir(), "wtc.log"))
}

// Load reads the configuration out of v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	mode, err := ParseMode(v.GetString("api.mode"))
	if err != nil {
		return nil, err
	}

	timeout := v.GetDuration("api.timeout")
	if timeout < 0 {
		return nil, fmt.Errorf("%w: api.timeout must not be negative", common.ErrInvalidConfig)
	}

	cfg := &Config{
		API: APIConfig{
			URL:     v.GetString("api.url"),
			Origin:  v.GetString("api.origin"),
			Mode:    mode,
			Timeout: timeout,
		},
		Features: FeatureConfig{
			Rewrite: v.GetBool("features.rewrite"),
		},
		UI: UIConfig{
			Theme:     v.GetString("ui.theme"),
			AltScreen: v.GetBool("ui.alt_screen"),
		},
		Serve: ServeConfig{
			Addr:        v.GetString("serve.addr"),
			Upstream:    v.GetString("serve.upstream"),
			TLS:         v.GetBool("serve.tls"),
			CertDir:     ExpandPath(v.GetString("serve.cert_dir")),
			CORSOrigins: splitList(v.GetStringSlice("serve.cors_origins")),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
	}

	if _, err := ResolveBaseURL(cfg.API); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList flattens comma-separated entries, which is how list values
// arrive from environment variables.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
