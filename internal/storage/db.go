// Package storage opens the local SQLite database that serves as the
// application's durable key-value store and keeps its schema current.
package storage

import (
	"context"
	"database/sql"

	"farmstead/internal/migrations"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Open opens (creating if necessary) the storage database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
