// Package moderation holds repository-level assets shared by the binaries, such as
// the embedded SQL migrations applied by the migrate command.
package moderation

import "embed"

// Migrations contains goose migration files under the migrations directory.
//
//go:embed migrations/*.sql
var Migrations embed.FS
