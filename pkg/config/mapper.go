package config

import "time"

// mapProperties converts a decoded "dashx" section into a Config. Blank
// strings stay unset. Millisecond timeouts are applied first, so a nested
// timeouts block wins over them.
func mapProperties(p propertiesDTO) *Config {
	cfg := &Config{}

	setString(&cfg.BaseURL, p.BaseURL)
	setString(&cfg.PublicKey, p.PublicKey)
	setString(&cfg.PrivateKey, p.PrivateKey)
	setString(&cfg.TargetEnvironment, p.TargetEnvironment)
	if p.Debug != nil {
		cfg.Debug = *p.Debug
	}
	if p.MaxConnections != nil {
		cfg.MaxConnections = *p.MaxConnections
	}

	setMillis(&cfg.Timeouts.Connect, p.ConnectionTimeout)
	setMillis(&cfg.Timeouts.Response, p.ResponseTimeout)
	setMillis(&cfg.Timeouts.IdleConn, p.MaxIdleTime)
	setMillis(&cfg.Timeouts.Upload, p.UploadTimeout)

	if t := p.Timeouts; t != nil {
		setDuration(&cfg.Timeouts.Connect, t.Connect)
		setDuration(&cfg.Timeouts.Response, t.Response)
		setDuration(&cfg.Timeouts.IdleConn, t.IdleConn)
		setDuration(&cfg.Timeouts.Upload, t.Upload)
	}
	return cfg
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, ms *int64) {
	if ms != nil {
		*dst = time.Duration(*ms) * time.Millisecond
	}
}

func setDuration(dst *time.Duration, d *time.Duration) {
	if d != nil {
		*dst = *d
	}
}
