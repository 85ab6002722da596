package gate

import "errors"

var (
	ErrNilVerifier = errors.New("gate.nil_verifier")
	ErrNoUpstream  = errors.New("gate.no_upstream")
)
