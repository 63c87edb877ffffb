// Package migrations embeds the goose migrations of the postgres session backend.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
