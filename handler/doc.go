// Package handler provides typed HTTP handlers.
//
// A HandlerFunc receives a request value decoded by the configured binders
// and returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type loginRequest struct {
//		Email    string `json:"email" form:"email"`
//		Password string `json:"password" form:"password"`
//	}
//
//	func login(ctx handler.Context, req loginRequest) handler.Response {
//		if req.Email == "" {
//			return handler.JSON(http.StatusBadRequest, handler.Message("Email is required."))
//		}
//		return handler.JSON(http.StatusOK, handler.Message("ok"))
//	}
//
//	r.Post("/api/login", handler.Wrap(login,
//		handler.WithBinders[handler.Context, loginRequest](binder.JSON(), binder.Form()),
//	))
//
// Binders returning an error that wraps binder.ErrNotApplicable are skipped.
// Any other binding error is reported as a 400 HTTPError. Rendering errors
// and nil responses go to the error handler, which by default writes a JSON
// body of the form {"message": "..."}.
package handler
