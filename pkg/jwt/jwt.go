package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the session lifetime used when configuration does not say otherwise.
const DefaultTTL = 7 * 24 * time.Hour

var signingMethod = gojwt.SigningMethodHS256

// Identity is the claim set carried by a session token.
type Identity struct {
	Subject string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	gojwt.RegisteredClaims
}

// Codec signs and verifies session tokens with HMAC-SHA256.
// It is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *gojwt.Parser
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock replaces the time source used for iat, exp and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a codec bound to secret. The secret is copied and never changes
// for the life of the codec.
func New(secret []byte, ttl time.Duration, opts ...Option) (*Codec, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	c := &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.parser = gojwt.NewParser(
		gojwt.WithValidMethods([]string{signingMethod.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(c.now),
	)

	return c, nil
}

// NewFromConfig creates a codec from environment configuration.
func NewFromConfig(cfg Config, opts ...Option) (*Codec, error) {
	return New([]byte(cfg.Secret), cfg.TTL, opts...)
}

// TTL returns the token lifetime. Cookie Max-Age is derived from the same value.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Mint signs id into a compact token valid for the codec TTL starting now.
func (c *Codec) Mint(id Identity) (string, error) {
	if id.Subject == "" || id.Email == "" {
		return "", ErrMissingClaims
	}

	now := c.now()
	claims := sessionClaims{
		Name:  id.Name,
		Email: id.Email,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   id.Subject,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token, err := gojwt.NewWithClaims(signingMethod, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return token, nil
}

// Verify checks the token signature and expiry and returns the identity it
// carries. A token is valid strictly before its exp timestamp.
func (c *Codec) Verify(token string) (Identity, error) {
	claims := new(sessionClaims)
	if _, err := c.parser.ParseWithClaims(token, claims, c.key); err != nil {
		return Identity{}, classify(err)
	}

	if claims.Subject == "" || claims.Email == "" || claims.IssuedAt == nil {
		return Identity{}, ErrMalformedToken
	}

	return Identity{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
	}, nil
}

func (c *Codec) key(*gojwt.Token) (any, error) {
	return c.secret, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return ErrTamperedToken
	default:
		return ErrMalformedToken
	}
}
