// Package gamedata provides the read-only reference tables (species, moves,
// type chart, stat stages) and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds the per-generation JSON tables from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
