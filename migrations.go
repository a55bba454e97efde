// Package privacymon holds assets shared by the binaries of the exposure monitor.
package privacymon

import "embed"

// Migrations contains the goose SQL migrations for the application tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS
