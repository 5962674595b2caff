package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// NewSQLiteDB opens (creating if necessary) the store file at path.
// WAL keeps readers from blocking the single writer; the busy timeout
// covers writer contention between requests and the rollover job.
func NewSQLiteDB(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		return nil, err
	}

	return &DB{DB: db}, nil
}

func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.DB.BeginTx(ctx, nil)
}

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	nome   TEXT    NOT NULL,
	status TEXT    NOT NULL DEFAULT 'active',
	logado INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS vacations (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	nome TEXT    NOT NULL,
	mes  INTEGER NOT NULL CHECK (mes BETWEEN 1 AND 12)
);
`

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
