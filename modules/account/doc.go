// Package account serves the login entry page and the login and logout API.
//
// Routes registered by Service.Routes:
//
//	GET  /login        login page, copies ?callbackUrl into the form
//	POST /api/login    verifies credentials and sets the session cookie
//	POST /api/logout   clears the session cookie
//
// Both API routes answer any other method with 405 {"message":"Method not allowed"}.
package account
