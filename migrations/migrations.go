package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/color-game/palettes/datastore"
)

//go:embed *.sql
var files embed.FS

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// RunMigrations executes all pending migrations
func RunMigrations(db *sql.DB, dbtype string) error {
	log.Println("Starting database migrations...")

	if err := createMigrationsTable(db); err != nil {
		return errors.Wrap(err, "failed to create migrations table")
	}

	appliedMigrations, err := getAppliedMigrations(db)
	if err != nil {
		return errors.Wrap(err, "failed to get applied migrations")
	}

	migrations, err := Load(files)
	if err != nil {
		return errors.Wrap(err, "failed to read migration files")
	}

	for _, migration := range migrations {
		if appliedMigrations[migration.Version] {
			log.Printf("Migration %03d_%s already applied, skipping", migration.Version, migration.Name)
			continue
		}

		log.Printf("Applying migration %03d_%s...", migration.Version, migration.Name)
		if err := applyMigration(db, dbtype, migration); err != nil {
			return errors.Wrapf(err, "failed to apply migration %03d_%s", migration.Version, migration.Name)
		}
		log.Printf("Successfully applied migration %03d_%s", migration.Version, migration.Name)
	}

	log.Println("All migrations completed successfully")
	return nil
}

// createMigrationsTable creates the schema_migrations table
func createMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL
		)`

	_, err := db.Exec(query)
	return err
}

// getAppliedMigrations returns a map of applied migration versions
func getAppliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

// Load reads NNN_name.sql files from fsys sorted by version.
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	seen := make(map[int]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		var version int
		var name string
		if _, err := fmt.Sscanf(entry.Name(), "%d_%s", &version, &name); err != nil {
			log.Printf("Warning: Skipping file with invalid format: %s", entry.Name())
			continue
		}
		if other, dup := seen[version]; dup {
			return nil, errors.Errorf("migration version %03d used by %s and %s", version, other, entry.Name())
		}
		seen[version] = entry.Name()

		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read migration file %s", entry.Name())
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(name, ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// applyMigration executes a migration and records it in schema_migrations
func applyMigration(db *sql.DB, dbtype string, migration Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(migration.SQL); err != nil {
		return err
	}

	recordQuery := `
		INSERT INTO schema_migrations (version, name, applied_at)
		VALUES ($1, $2, $3)`

	if _, err := tx.Exec(datastore.Rebind(dbtype, recordQuery), migration.Version, migration.Name, time.Now()); err != nil {
		return err
	}

	return tx.Commit()
}
