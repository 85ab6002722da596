package jwt

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidToken   = errors.New("jwt: invalid token")
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTamperedToken  = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	ErrExpiredToken   = fmt.Errorf("%w: token is expired", ErrInvalidToken)

	ErrMissingClaims = errors.New("jwt: identity is missing subject or email")
	ErrMissingSecret = errors.New("jwt: missing signing secret")
	ErrInvalidTTL    = errors.New("jwt: token lifetime must be positive")
)
