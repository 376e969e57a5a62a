package migrations

import "embed"

// FS embeds the development schema. Production tables are owned by the
// analytics pipeline; these migrations recreate them for local databases
// and tests.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
