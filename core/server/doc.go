// Package server holds the HTTP server configuration for the `serve` command.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting the corpus
// routes, and how long the corpus summary stays cached.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/serve.go when the
// Fiber application is started.
package server
