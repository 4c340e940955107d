// Package server runs the web console's HTTP listener.
//
// It owns startup, signal handling and graceful shutdown: the server stops
// on SIGINT, SIGTERM or SIGQUIT, or when the caller's context is cancelled.
package server
