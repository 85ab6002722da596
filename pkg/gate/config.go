package gate

// Config holds gate configuration.
type Config struct {
	ProtectedPrefix string `env:"GATE_PROTECTED_PREFIX" envDefault:"/dashboard" validate:"required,startswith=/"`
	LoginPath       string `env:"GATE_LOGIN_PATH" envDefault:"/login" validate:"required,startswith=/"`
	CallbackParam   string `env:"GATE_CALLBACK_PARAM" envDefault:"callbackUrl" validate:"required"`
	CookieName      string `env:"AUTH_COOKIE_NAME" envDefault:"auth_token" validate:"required"`
}

// DefaultConfig returns the gate defaults.
func DefaultConfig() Config {
	return Config{
		ProtectedPrefix: "/dashboard",
		LoginPath:       "/login",
		CallbackParam:   "callbackUrl",
		CookieName:      "auth_token",
	}
}
