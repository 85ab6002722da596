// Package mongo opens the MongoDB connection that backs the credential store.
//
// New applies the pool and timeout settings from Config, verifies the
// connection with a ping and retries a bounded number of times, honouring
// context cancellation between attempts. Healthcheck adapts a client to the
// readiness probe signature used by pkg/httpserver.
package mongo
