package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Veraticus/template-classifier/internal/common"
)

// Mode selects between the deployed and the local-development endpoint.
type Mode string

// Build modes.
const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Default endpoints.
const (
	// ProductionBasePath is where the reverse proxy exposes the service.
	ProductionBasePath = "/api"
	// DevelopmentBaseURL is the service's local development address.
	DevelopmentBaseURL = "http://localhost:8000"
)

// ParseMode accepts the long and short spellings of each mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dev", "development":
		return ModeDevelopment, nil
	case "prod", "production":
		return ModeProduction, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", common.ErrInvalidConfig, s)
	}
}

// ResolveBaseURL picks the service base URL. An explicit override always
// wins; otherwise production uses the proxied /api prefix and development
// talks to the local service directly. A relative result is joined onto
// origin, since a terminal process has no page origin of its own.
func ResolveBaseURL(api APIConfig) (string, error) {
	base := strings.TrimSpace(api.URL)
	if base == "" {
		if api.Mode == ModeProduction {
			base = ProductionBasePath
		} else {
			base = DevelopmentBaseURL
		}
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: api url %q: %v", common.ErrInvalidConfig, base, err)
	}
	if u.IsAbs() {
		return strings.TrimRight(u.String(), "/"), nil
	}

	origin, err := url.Parse(strings.TrimSpace(api.Origin))
	if err != nil || !origin.IsAbs() || origin.Host == "" {
		return "", fmt.Errorf("%w: relative api url %q needs an absolute origin, got %q",
			common.ErrInvalidConfig, base, api.Origin)
	}

	joined := strings.TrimRight(origin.String(), "/") + "/" + strings.TrimLeft(u.String(), "/")
	return strings.TrimRight(joined, "/"), nil
}
