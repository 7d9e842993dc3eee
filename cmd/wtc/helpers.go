package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/template-classifier/internal/api"
	"github.com/Veraticus/template-classifier/internal/config"
	"github.com/spf13/viper"
)

// loadConfig reads the validated configuration from the global viper.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newClient builds the service client for cfg.
func newClient(cfg *config.Config) (*api.Client, error) {
	baseURL, err := config.ResolveBaseURL(cfg.API)
	if err != nil {
		return nil, err
	}

	slog.Debug("Using classification service", "base_url", baseURL, "mode", cfg.API.Mode)

	return api.NewClient(baseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(slog.Default()),
	), nil
}
