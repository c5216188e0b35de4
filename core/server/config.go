package server

import "strings"

// Config holds configuration for the read-only corpus HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key leaves the API open, which is only meant for local use.
	ApiKey string `mapstructure:"api_key" default:""`
	// IndexTTLSeconds is how long the corpus summary stays cached between requests.
	IndexTTLSeconds int `mapstructure:"index_ttl_seconds" default:"30"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// Protected reports whether requests must carry the API key.
func (c Config) Protected() bool {
	return c.ApiKey != ""
}
