// Package migrations embeds the goose migrations applied to the local
// storage database on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
