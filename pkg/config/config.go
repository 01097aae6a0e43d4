// Package config defines the runtime configuration for the SDK: API endpoint,
// credentials, target environment, debug mode, connection pool sizing and
// operation timeouts. It also provides validation, defaulting and loading
// helpers.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
)

// DefaultBaseURL is the hosted GraphQL endpoint used when BaseURL is empty.
const DefaultBaseURL = "https://api.dashx.com/graphql"

// DefaultMaxConnections caps the pooled connections to the API host.
const DefaultMaxConnections = 500

// Config holds all SDK settings required to build a GraphQL client.
// Use Validate to fill implicit defaults and to check for required fields.
type Config struct {
	// BaseURL is the full GraphQL endpoint URL.
	// Default: https://api.dashx.com/graphql
	BaseURL string `json:"base_url" yaml:"base_url"`
	// PublicKey is sent as X-Public-Key on every request (required).
	PublicKey string `json:"public_key" yaml:"public_key"`
	// PrivateKey is sent as X-Private-Key on every request (required).
	PrivateKey string `json:"private_key" yaml:"private_key"`
	// TargetEnvironment is sent as X-Target-Environment (required).
	TargetEnvironment string `json:"target_environment" yaml:"target_environment"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// MaxConnections bounds the connection pool. Default: 500.
	MaxConnections int `json:"max_connections" yaml:"max_connections"`
	// Timeouts configures per-operation timeouts. See Timeouts.WithDefaults for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by defaults in WithDefaults.
type Timeouts struct {
	Connect  time.Duration `json:"connect" yaml:"connect"`     // dial
	Response time.Duration `json:"response" yaml:"response"`   // wait for response headers
	IdleConn time.Duration `json:"idle_conn" yaml:"idle_conn"` // keep idle pooled connections
	Upload   time.Duration `json:"upload" yaml:"upload"`       // signed-URL PUT/GET of asset bytes
}

// Validate normalizes the configuration by applying implicit defaults for
// BaseURL, MaxConnections and Timeouts, and verifies that credentials and the
// target environment are provided. Negative sizes and durations are rejected
// rather than defaulted.
func (c *Config) Validate() error {
	const op = "config.validate"

	if c == nil {
		return dashxerr.Validation(op, "configuration cannot be nil")
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return dashxerr.Configuration(op, fmt.Sprintf("invalid base URL %q", c.BaseURL))
	}

	if c.PublicKey == "" {
		return dashxerr.Configuration(op, "public key is required")
	}
	if c.PrivateKey == "" {
		return dashxerr.Configuration(op, "private key is required")
	}
	if c.TargetEnvironment == "" {
		return dashxerr.Configuration(op, "target environment is required")
	}

	if c.MaxConnections < 0 {
		return dashxerr.Configuration(op, fmt.Sprintf("max connections must be positive, got: %d", c.MaxConnections))
	}
	if c.MaxConnections == 0 {
		c.MaxConnections = DefaultMaxConnections
	}

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"connect", c.Timeouts.Connect},
		{"response", c.Timeouts.Response},
		{"idle_conn", c.Timeouts.IdleConn},
		{"upload", c.Timeouts.Upload},
	} {
		if d.value < 0 {
			return dashxerr.Configuration(op, fmt.Sprintf("%s timeout must be positive, got: %s", d.name, d.value))
		}
	}
	c.Timeouts = c.Timeouts.WithDefaults()

	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Connect:  10s
//	Response: 30s
//	IdleConn: 20s
//	Upload:   60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Connect == 0 {
		tt.Connect = 10 * time.Second
	}
	if tt.Response == 0 {
		tt.Response = 30 * time.Second
	}
	if tt.IdleConn == 0 {
		tt.IdleConn = 20 * time.Second
	}
	if tt.Upload == 0 {
		tt.Upload = 60 * time.Second
	}
	return tt
}
