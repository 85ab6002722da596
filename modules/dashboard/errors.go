package dashboard

import "errors"

var (
	ErrNilReader   = errors.New("dashboard: nil session reader")
	ErrNilVerifier = errors.New("dashboard: nil token verifier")
)
