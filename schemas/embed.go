// Package schemas holds the JSON Schema documents for the records exchanged by career-copilot.
package schemas

import "embed"

// Files contains every *.schema.json document in this directory
//
//go:embed *.schema.json
var Files embed.FS
