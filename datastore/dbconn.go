package datastore

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const (
	Postgres = "postgres"
	SQLite   = "sqlite3"
)

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// NewDB opens a connection for the given driver ("postgres" or "sqlite3") and
// verifies it with a ping.
func NewDB(dbtype string, connstr string) (*sql.DB, error) {
	db, openError := sql.Open(dbtype, connstr)
	if openError != nil {
		return nil, errors.Wrap(openError, "error opening connection")
	}

	if pingError := db.Ping(); pingError != nil {
		db.Close()
		return nil, errors.Wrap(pingError, "could not establish connection with database")
	}

	if dbtype == SQLite {
		// :memory: databases live and die with a single connection
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// BuildDBConnStr builds a PostgreSQL connection string
func BuildDBConnStr(password, user, host, dbname, sslmode string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s", user, password, host, dbname, sslmode)
}

// Rebind rewrites $N placeholders into the driver's syntax.
func Rebind(dbtype, query string) string {
	if dbtype != SQLite {
		return query
	}
	return placeholderPattern.ReplaceAllString(query, "?$1")
}
