// Package environment names the deployment environment the dashboard runs in
// and carries it through request contexts.
//
// The environment decides whether session cookies carry the Secure flag,
// which log format is used and whether diagnostic endpoints are served.
// Parse normalises the common short aliases ("prod", "stage", "dev").
package environment
