package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// Migrations ship inside the binary so deploys never depend on a
// migrations directory being present on disk.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations brings the schema up to date with goose. A nil database
// means the service is running on in-memory repositories and there is
// nothing to migrate.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, database, "migrations")
}
