package binder

import "errors"

// Common binding errors
var (
	// ErrNotApplicable is returned when the request content type does not
	// belong to the binder. Callers chaining binders skip to the next one.
	ErrNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
)
