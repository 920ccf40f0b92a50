// Package transport is the network collaborator of the dispatch core. It
// accepts TCP connections, parses each raw HTTP/1.1 request into an
// httpwire.Request, hands it to the router, and serializes the resulting
// httpwire.Response back onto the connection. Connections are handled one at
// a time, each fully processed before the next accept, and closed after the
// response is written.
package transport

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds transport configuration with environment variable support.
type Config struct {
	// Listen address
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Per-connection read deadline; 0 disables it
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`

	// Maximum accepted request body size in bytes
	MaxBodySize int64 `env:"SERVER_MAX_BODY_SIZE" envDefault:"65536"`

	// Grace period for in-flight work on shutdown
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns a Config with the defaults used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		MaxBodySize:     64 << 10,
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfig parses the transport configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
