// Package migration applies the versioned schema of the users database.
// Each file under sql/ is one version; only versions missing from the
// schema_migrations table are applied.
package migration

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

const (
	dialect   = "sqlite3"
	tableName = "schema_migrations"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

type Status struct {
	ID        string
	Applied   bool
	AppliedAt string
}

func init() {
	migrate.SetTable(tableName)
}

func source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "sql",
	}
}

// Up applies every pending migration and returns how many ran.
func Up(db *sql.DB) (int, error) {
	return migrate.Exec(db, dialect, source(), migrate.Up)
}

// Down rolls back at most steps migrations, newest first. A steps value of
// zero rolls back everything.
func Down(db *sql.DB, steps int) (int, error) {
	return migrate.ExecMax(db, dialect, source(), migrate.Down, steps)
}

func List(db *sql.DB) ([]Status, error) {
	migrations, err := source().FindMigrations()
	if err != nil {
		return nil, err
	}

	records, err := migrate.GetMigrationRecords(db, dialect)
	if err != nil {
		return nil, err
	}

	applied := make(map[string]string, len(records))
	for _, record := range records {
		applied[record.Id] = record.AppliedAt.Format("2006-01-02 15:04:05")
	}

	statuses := make([]Status, 0, len(migrations))
	for _, m := range migrations {
		appliedAt, ok := applied[m.Id]
		statuses = append(statuses, Status{
			ID:        m.Id,
			Applied:   ok,
			AppliedAt: appliedAt,
		})
	}
	return statuses, nil
}
