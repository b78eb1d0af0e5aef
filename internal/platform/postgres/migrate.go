package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationTable = "schema_migrations"

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// Migrate applies pending schema migrations and returns how many ran.
func Migrate(db *sql.DB) (int, error) {
	migrate.SetTable(migrationTable)
	n, err := migrate.Exec(db, "postgres", migrationSource(), migrate.Up)
	if err != nil {
		return n, fmt.Errorf("apply migrations: %w", err)
	}
	return n, nil
}

// Rollback reverts up to max migrations (0 means all).
func Rollback(db *sql.DB, max int) (int, error) {
	migrate.SetTable(migrationTable)
	n, err := migrate.ExecMax(db, "postgres", migrationSource(), migrate.Down, max)
	if err != nil {
		return n, fmt.Errorf("revert migrations: %w", err)
	}
	return n, nil
}
