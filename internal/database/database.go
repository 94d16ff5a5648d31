// Package database centralises sqlx connection helpers.  The default driver
// is go-sql-driver/mysql, which also works with MariaDB when configured for
// the MySQL wire protocol.
//
// Public entry points:
//
//	Open(dsn)          – long-lived admin pool with conservative sizes.
//	OpenOnce(ctx, dsn) – short-lived single connection for one tenant call.
//
// Both helpers Ping the database before returning so callers can fail fast.
// Callers must Close() the returned *sqlx.DB when no longer needed; for
// OpenOnce that means before the request handler returns.
//
// DSNs must carry `parseTime=true` so TIMESTAMP columns scan into
// time.Time; see schema/README notes in the repo root.
package database

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Open returns the shared admin pool: 15 max open, 5 idle, 30-minute
// connection lifetime.  Opened once at process start and closed at
// shutdown by cmd/admin.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(15)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenOnce returns a throwaway connection for exactly one tenant operation.
// The catalog layer opens one per call and closes it before returning, so
// limits are kept minimal.  The ping honours the request context.
func OpenOnce(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
