package config

import "time"

// Config holds runtime settings for the skybook client.
//
// Fields:
//   - APIBaseURL: base URL of the booking REST backend, including the
//     version prefix (e.g. http://localhost:3000/api/v1).
//   - RequestTimeout: fixed per-request timeout for the HTTP pipeline.
//     A timed-out request is reported as a network failure.
//   - DatabasePath: location of the local sqlite file backing durable
//     storage (session, payment-stage booking draft).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api/v1"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "skybook.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
