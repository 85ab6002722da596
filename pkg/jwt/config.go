package jwt

import "time"

// DefaultSecret is the development fallback secret. It must never be used in production.
const DefaultSecret = "dev_secret_key"

// Config holds codec settings loaded from the environment.
type Config struct {
	Secret string        `env:"AUTH_SECRET" envDefault:"dev_secret_key" validate:"required"`
	TTL    time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"168h" validate:"gt=0"`
}
