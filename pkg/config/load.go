package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dashxhq/dashx-go/pkg/dashxerr"
)

// Environment variables that override values read from a config file.
const (
	EnvBaseURL           = "DASHX_BASE_URL"
	EnvPublicKey         = "DASHX_PUBLIC_KEY"
	EnvPrivateKey        = "DASHX_PRIVATE_KEY"
	EnvTargetEnvironment = "DASHX_TARGET_ENVIRONMENT"
	EnvDebug             = "DASHX_DEBUG"
)

// Load reads the "dashx" section of the YAML file at path (if path is
// non-empty) and applies environment overrides on top of it. Keys use relaxed
// binding, so the Spring starter's "public-key" or "publicKey" work as well as
// "public_key". An unknown key in the section is a configuration error. The
// returned Config is not validated; callers pass it to Validate or
// sdk.Client.Configure.
func Load(path string) (*Config, error) {
	const op = "config.load"

	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, dashxerr.Wrap(op, dashxerr.KindConfiguration, err)
		}
		cfg, err = parseFile(b)
		if err != nil {
			return nil, dashxerr.Wrap(op, dashxerr.KindConfiguration, fmt.Errorf("parse %s: %w", path, err))
		}
	}

	applyEnv(cfg, os.LookupEnv)
	return cfg, nil
}

// parseFile decodes the "dashx" section of a YAML document. A document
// without one yields an empty Config.
func parseFile(b []byte) (*Config, error) {
	var doc fileDTO
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	section := &doc.DashX
	if isNull(section) {
		return &Config{}, nil
	}
	if err := normalizeKeys(section, "dashx", propertiesSchema); err != nil {
		return nil, err
	}

	var p propertiesDTO
	if err := section.Decode(&p); err != nil {
		return nil, err
	}
	return mapProperties(p), nil
}

// applyEnv overlays non-empty environment values onto cfg. Blank strings are
// treated as unset.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := get(EnvBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := get(EnvPublicKey); ok {
		cfg.PublicKey = v
	}
	if v, ok := get(EnvPrivateKey); ok {
		cfg.PrivateKey = v
	}
	if v, ok := get(EnvTargetEnvironment); ok {
		cfg.TargetEnvironment = v
	}
	if v, ok := get(EnvDebug); ok {
		cfg.Debug = v == "1" || strings.EqualFold(v, "true")
	}
}
