// Package migrations embeds the goose migrations applied to the client's
// local sqlite database on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
