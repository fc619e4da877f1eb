package config

import "time"

// Config holds runtime settings for the PantryPal CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST service.
//   - StoragePath: path of the local SQLite file holding persisted session state.
//   - RequestTimeout: per-request timeout for backend calls.
type Config struct {
	APIBaseURL     string
	StoragePath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.StoragePath = "pantry.db"
	c.RequestTimeout = 10 * time.Second
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
