// Package config loads the runtime configuration of the TaskFlow CLI from
// layered sources: built-in defaults, the environment (.env aware), an
// optional JSON file and command-line flags, in ascending precedence.
package config
