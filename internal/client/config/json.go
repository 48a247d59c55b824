package config

import (
	"encoding/json"
	"os"

	"github.com/taskflowhq/taskflow-cli/internal/flagx"
	"github.com/taskflowhq/taskflow-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// rely on timex.Duration so the file can specify either strings like
// "500ms" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SearchDebounce     timex.Duration `json:"search_debounce"`
	LocalDBPath        string         `json:"local_db_path"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. Absent flag means no JSON layer. Only fields present
// in the file override the current values. Read or unmarshal errors panic;
// the caller decides whether to recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SearchDebounce.Duration > 0 {
		cfg.SearchDebounce = jc.SearchDebounce.Duration
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
