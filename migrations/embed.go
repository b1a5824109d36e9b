package migrations

import "embed"

// Files holds the ordered SQL migrations compiled into the binary so a
// bare database file is all a deployment needs.
//
//go:embed *.sql
var Files embed.FS
