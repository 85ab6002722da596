// Package binder decodes HTTP request bodies into Go structs.
//
// Every binder has the signature func(r *http.Request, v any) error so that
// several of them can be chained. A binder that does not handle the request
// content type returns an error wrapping ErrNotApplicable; the caller moves on
// to the next binder.
//
//	type loginRequest struct {
//		Email    string `json:"email" form:"email"`
//		Password string `json:"password" form:"password"`
//	}
//
//	var req loginRequest
//	for _, bind := range []func(*http.Request, any) error{binder.JSON(), binder.Form()} {
//		if err := bind(r, &req); err != nil && !errors.Is(err, binder.ErrNotApplicable) {
//			return err
//		}
//	}
//
// JSON bodies are limited to DefaultMaxJSONSize bytes. Form binding supports
// application/x-www-form-urlencoded and multipart/form-data values for scalar
// fields, pointers to scalars and slices of scalars tagged with `form:"name"`.
package binder
