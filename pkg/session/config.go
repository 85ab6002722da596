package session

// DefaultCookieName is the cookie that carries the session token.
const DefaultCookieName = "auth_token"

// Config holds session configuration
type Config struct {
	CookieName string `env:"AUTH_COOKIE_NAME" envDefault:"auth_token" validate:"required"`
}
