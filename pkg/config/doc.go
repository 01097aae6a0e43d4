// Package config provides configuration management for the DashX SDK.
//
// # Basic Configuration
//
// The minimum required configuration is the key pair and target environment:
//
//	cfg := &config.Config{
//		PublicKey:         "YOUR_PUBLIC_KEY",
//		PrivateKey:        "YOUR_PRIVATE_KEY",
//		TargetEnvironment: "staging",
//	}
//
// BaseURL defaults to DefaultBaseURL. Point it at a self-hosted or staging
// deployment when needed:
//
//	cfg.BaseURL = "https://api.staging.example.com/graphql"
//
// # Timeouts and Pooling
//
// Zero values are replaced with defaults by Validate:
//
//	Connect:        10s
//	Response:       30s
//	IdleConn:       20s
//	Upload:         60s
//	MaxConnections: 500
//
// Negative values are rejected with a configuration error.
//
// # Loading From a File
//
// Load reads the "dashx" section of a YAML document and applies DASHX_*
// environment overrides. Other top-level sections are ignored, so a shared
// application.yml works. Keys use relaxed binding: "public-key", "publicKey"
// and "public_key" are the same setting. The Spring starter's property names
// are accepted, with integer timeouts in milliseconds:
//
//	dashx:
//	  public-key: pk_123
//	  private-key: sk_123
//	  target-environment: production
//	  connection-timeout: 10000
//	  response-timeout: 30000
//	  max-idle-time: 20000
//	  max-connections: 500
//
// A nested timeouts block takes Go durations and wins over the flat keys:
//
//	dashx:
//	  timeouts:
//	    response: 45s
//	    upload: 2m
//
// An unknown key inside the section is a configuration error.
//
// # Thread Safety
//
// Config instances should be created once and not modified after being
// passed to sdk.Client.Configure.
package config
