package postgres

import "embed"

// MigrationsFS holds the goose SQL migrations for the schema.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the directory inside MigrationsFS that goose reads.
const MigrationsDir = "migrations"
