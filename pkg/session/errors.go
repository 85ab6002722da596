package session

import "errors"

var (
	ErrNoSession = errors.New("session.not_found")
	ErrNilCodec  = errors.New("session.nil_codec")
)
