package cmd

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/dashboard/pkg/clientip"
	"github.com/dmitrymomot/dashboard/pkg/config"
	"github.com/dmitrymomot/dashboard/pkg/cookie"
	"github.com/dmitrymomot/dashboard/pkg/environment"
	"github.com/dmitrymomot/dashboard/pkg/gate"
	"github.com/dmitrymomot/dashboard/pkg/httpserver"
	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/session"
)

var (
	ErrInsecureSecret     = errors.New("AUTH_SECRET must be set to a non-default value in production")
	ErrCookieNameMismatch = errors.New("gate and session cookie names differ")
	ErrUnknownEnvironment = errors.New("unknown APP_ENV")
)

// appConfig is shared by serve and edge.
type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"dashboard" validate:"required"`

	JWT      jwt.Config
	Cookie   cookie.Config
	Session  session.Config
	Gate     gate.Config
	HTTP     httpserver.Config
	ClientIP clientip.Config
}

func (c appConfig) environment() environment.Environment {
	return environment.Parse(c.Env)
}

// check applies the rules struct tags cannot express.
func (c appConfig) check() error {
	switch c.environment() {
	case environment.Development, environment.Staging, environment.Production:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnvironment, c.Env)
	}
	if c.environment().IsProduction() && c.JWT.Secret == jwt.DefaultSecret {
		return ErrInsecureSecret
	}
	if c.Gate.CookieName != c.Session.CookieName {
		return fmt.Errorf("%w: %q != %q", ErrCookieNameMismatch, c.Gate.CookieName, c.Session.CookieName)
	}
	return nil
}

func loadAppConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	if err := cfg.check(); err != nil {
		return appConfig{}, errors.Join(config.ErrInvalidConfig, err)
	}
	return cfg, nil
}
