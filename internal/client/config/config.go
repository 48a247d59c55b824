package config

import "time"

// Config holds runtime settings for the TaskFlow CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the TaskFlow REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - SearchDebounce: quiescence window of the incremental member search.
//   - LocalDBPath: path of the sqlite file holding the persisted session.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SearchDebounce     time.Duration
	LocalDBPath        string
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.SearchDebounce = 500 * time.Millisecond
	c.LocalDBPath = "taskflow.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if given via -c/-config) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
