// Package dashboard serves the protected dashboard pages and the debug
// session endpoints.
//
// The edge gate decides access. The pages here only personalise the layout
// with the identity from the session reader and fall back to the login
// redirect when it yields none.
package dashboard
