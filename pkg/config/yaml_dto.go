package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileDTO mirrors the on-disk layout. Only the "dashx" section is read; other
// top-level sections of a shared application file are left alone.
type fileDTO struct {
	DashX yaml.Node `yaml:"dashx"`
}

// propertiesDTO is the "dashx" section after key normalization. The flat
// timeouts are integer milliseconds, as in the Spring starter properties.
type propertiesDTO struct {
	BaseURL           *string      `yaml:"baseurl"`
	PublicKey         *string      `yaml:"publickey"`
	PrivateKey        *string      `yaml:"privatekey"`
	TargetEnvironment *string      `yaml:"targetenvironment"`
	Debug             *bool        `yaml:"debug"`
	MaxConnections    *int         `yaml:"maxconnections"`
	ConnectionTimeout *int64       `yaml:"connectiontimeout"`
	ResponseTimeout   *int64       `yaml:"responsetimeout"`
	MaxIdleTime       *int64       `yaml:"maxidletime"`
	UploadTimeout     *int64       `yaml:"uploadtimeout"`
	Timeouts          *timeoutsDTO `yaml:"timeouts"`
}

// timeoutsDTO is the nested block; values are Go durations such as "45s".
type timeoutsDTO struct {
	Connect  *time.Duration `yaml:"connect"`
	Response *time.Duration `yaml:"response"`
	IdleConn *time.Duration `yaml:"idleconn"`
	Upload   *time.Duration `yaml:"upload"`
}

// schema lists the accepted normalized keys. A nil value is a leaf.
type schema map[string]schema

var propertiesSchema = schema{
	"baseurl":           nil,
	"publickey":         nil,
	"privatekey":        nil,
	"targetenvironment": nil,
	"debug":             nil,
	"maxconnections":    nil,
	"connectiontimeout": nil,
	"responsetimeout":   nil,
	"maxidletime":       nil,
	"uploadtimeout":     nil,
	"timeouts": {
		"connect":  nil,
		"response": nil,
		"idleconn": nil,
		"upload":   nil,
	},
}

// normalizeKey applies relaxed binding: "base-url", "baseUrl" and "base_url"
// all become "baseurl".
func normalizeKey(k string) string {
	k = strings.ToLower(k)
	k = strings.ReplaceAll(k, "-", "")
	return strings.ReplaceAll(k, "_", "")
}

// normalizeKeys rewrites the keys of mapping n to their normalized form and
// rejects keys missing from s. path names n in error messages.
func normalizeKeys(n *yaml.Node, path string, s schema) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%s (line %d): expected a mapping", path, n.Line)
	}

	seen := make(map[string]string, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		raw := k.Value
		key := normalizeKey(raw)

		children, ok := s[key]
		if !ok {
			return fmt.Errorf("%s.%s (line %d): unknown key", path, raw, k.Line)
		}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("%s.%s (line %d): same setting as %s.%s", path, raw, k.Line, path, prev)
		}
		seen[key] = raw
		k.Value = key

		if children != nil && !isNull(v) {
			if err := normalizeKeys(v, path+"."+raw, children); err != nil {
				return err
			}
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}
