package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/dashboard/pkg/jwt"
	"github.com/dmitrymomot/dashboard/pkg/logger"
)

// DefaultBcryptCost matches the cost used when user records are provisioned.
const DefaultBcryptCost = 10

// Authenticator checks email and password pairs.
type Authenticator struct {
	store  CredentialStore
	logger *slog.Logger

	dummyOnce sync.Once
	dummyHash []byte
}

type Option func(*Authenticator)

func WithLogger(l *slog.Logger) Option {
	return func(a *Authenticator) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewAuthenticator(store CredentialStore, opts ...Option) (*Authenticator, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	a := &Authenticator{
		store:  store,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("auth"))

	return a, nil
}

// Login returns the identity of the user matching email and password.
func (a *Authenticator) Login(ctx context.Context, email, password string) (jwt.Identity, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return jwt.Identity{}, ErrMissingCredentials
	}

	user, err := a.store.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		// Spend the same bcrypt time as a real comparison.
		_ = bcrypt.CompareHashAndPassword(a.dummy(), []byte(password))
		a.logger.InfoContext(ctx, "login rejected", logger.Event("login.unknown_user"), logger.Email(email))
		return jwt.Identity{}, ErrInvalidCredentials
	case err != nil:
		a.logger.ErrorContext(ctx, "credential lookup failed", logger.Email(email), logger.Error(err))
		return jwt.Identity{}, errors.Join(ErrStoreUnavailable, err)
	case user == nil:
		a.logger.ErrorContext(ctx, "credential store returned no user and no error", logger.Email(email))
		return jwt.Identity{}, ErrStoreUnavailable
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			a.logger.WarnContext(ctx, "stored password hash unusable", logger.UserID(user.ID), logger.Error(err))
		}
		a.logger.InfoContext(ctx, "login rejected", logger.Event("login.bad_password"), logger.UserID(user.ID))
		return jwt.Identity{}, ErrInvalidCredentials
	}

	id := user.Identity()
	if id.Subject == "" || id.Email == "" {
		a.logger.ErrorContext(ctx, "user record lacks id or email", logger.UserID(id.Subject))
		return jwt.Identity{}, ErrStoreUnavailable
	}

	a.logger.InfoContext(ctx, "login succeeded", logger.Event("login.succeeded"), logger.UserID(id.Subject))
	return id, nil
}

func (a *Authenticator) dummy() []byte {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), DefaultBcryptCost)
	})
	return a.dummyHash
}

// HashPassword returns the bcrypt hash of password at the given cost.
// A cost of zero selects DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrMissingCredentials
	}
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
