// Package schemas provides embedded SQL migration files for the mysql cache driver.
package schemas

import "embed"

// Migrations contains all SQL migration files, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
