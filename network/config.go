package network

import "time"

// Config holds spectator server settings
type Config struct {
	// Address to bind, e.g. "127.0.0.1:8080"; empty disables the server
	Address string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns local-only defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "127.0.0.1:8080",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}
}
