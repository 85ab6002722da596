package cookie

import "errors"

var (
	ErrNotFound       = errors.New("cookie.not_found")
	ErrJarUnavailable = errors.New("cookie.jar_unavailable")
)
