// Package http implements the REST and tracking surface of the analytics
// server.
//
// Routes are split in three groups: tracking endpoints open to any origin,
// unauthenticated auth endpoints guarded by a per-IP rate limit, and the
// dashboard API which accepts either a session JWT or an API key. Request
// tracing, access logging, metrics, compression, CORS and panic recovery are
// applied as middleware before handlers delegate to the service layer.
package http
