// Package http implements the HTTP transport of the development storefront
// backend.
//
// It exposes route wiring, request handlers, and middleware for the API the
// client synchronizes against. Session authentication, request tracing,
// access logging, and request metrics are handled in this package before
// requests are delegated to the service layer.
package http
