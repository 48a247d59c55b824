package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file first when one exists in the working directory.
//
// Recognized variables:
//
//	TASKFLOW_SERVER_URL       base URL of the API
//	TASKFLOW_REQUEST_TIMEOUT  duration string, e.g. "15s"
//	TASKFLOW_SEARCH_DEBOUNCE  duration string, e.g. "500ms"
//	TASKFLOW_DB_PATH          sqlite file path
//	TASKFLOW_LOG_LEVEL        debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TASKFLOW_SERVER_URL"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("TASKFLOW_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("TASKFLOW_SEARCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SearchDebounce = d
		}
	}
	if v := os.Getenv("TASKFLOW_DB_PATH"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv("TASKFLOW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
