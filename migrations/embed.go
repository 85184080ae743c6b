// Package migrations embeds the SQL schema migrations applied on startup.
package migrations

import "embed"

// Files holds the goose migration files.
//
//go:embed *.sql
var Files embed.FS
