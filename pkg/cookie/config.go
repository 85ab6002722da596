package cookie

import "net/http"

// Config holds cookie attribute configuration.
// Secure is not configurable here: it follows the deployment environment.
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/" validate:"startswith=/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// NewFromConfig creates a Manager from cfg. Only non-zero values are applied.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
