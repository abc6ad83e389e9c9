// Package migrations embeds the goose migrations for the local state DB.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
