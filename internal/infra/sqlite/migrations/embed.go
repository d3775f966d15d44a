// Package migrations embeds the versioned goose migrations for the report database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
