package migrations

import "embed"

// Files holds the ordered SQL schema for the local profile store.
//
//go:embed *.sql
var Files embed.FS
