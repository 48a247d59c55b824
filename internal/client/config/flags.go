package config

import (
	"flag"
	"os"

	"github.com/taskflowhq/taskflow-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the TaskFlow API (default from Config)
//	-b string   sqlite file holding the persisted session
//	-l string   log level
//
// Only the flags handled here are parsed (via flagx.FilterArgs), so flags
// owned by other components pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-b", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "s", cfg.ServerEndpointAddr, "base URL of the TaskFlow API")
	fs.StringVar(&cfg.LocalDBPath, "b", cfg.LocalDBPath, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
