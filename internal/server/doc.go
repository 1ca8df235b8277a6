// Package server runs the HTTP server of the application.
//
// It handles startup, signal handling, and graceful shutdown bounded by the
// configured shutdown timeout.
package server
