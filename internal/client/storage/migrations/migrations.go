// Package migrations embeds the schema for the local storage database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
