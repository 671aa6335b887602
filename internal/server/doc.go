// Package server wires and runs the development backend's HTTP server.
//
// It provides startup, signal handling, and graceful shutdown.
package server
