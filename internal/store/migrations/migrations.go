// Package migrations embeds the SQL schema of the profile store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
