package userstore

import "errors"

var (
	ErrUnsupportedID = errors.New("userstore: unsupported _id type")
	ErrNilDatabase   = errors.New("userstore: nil database")
)
