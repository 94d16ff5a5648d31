// internal/user/repository.go
//
// Users-table query helpers.
//
// Workflow
// --------
//  1. Callers supply the *sqlx.DB admin pool opened at boot.
//  2. Each helper executes exactly one parameterised statement.
//  3. Point lookups return (nil, nil) when no row matches; only transport
//     and constraint failures surface as errors.
//
// Notes
// -----
//   - Duplicate username or email trips the UNIQUE constraints and is
//     translated to ErrConflict via MySQL error 1062.
//   - Column list matches the fields in `Record`; update both together.
package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// ErrConflict is returned when the username or email is already taken.
var ErrConflict = errors.New("username or email already in use")

const mysqlDupEntry = 1062

// Create inserts a new operator and returns the stored row.  The caller
// supplies an already-bcrypted password hash.
func Create(ctx context.Context, db *sqlx.DB, username, email, passwordHash, role string) (*Record, error) {
	const q = `
        INSERT INTO users (username, email, password_hash, role)
        VALUES (?, ?, ?, ?)`

	res, err := db.ExecContext(ctx, q, username, email, passwordHash, role)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil, ErrConflict
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return ByID(ctx, db, uint64(id))
}

// ByID fetches a single operator row.  (nil, nil) when absent.
func ByID(ctx context.Context, db *sqlx.DB, id uint64) (*Record, error) {
	const q = `
        SELECT id, username, email, password_hash, role, created_at
        FROM   users
        WHERE  id = ?
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// ByEmail fetches the operator owning email, used by the login flow.
// (nil, nil) when absent.
func ByEmail(ctx context.Context, db *sqlx.DB, email string) (*Record, error) {
	const q = `
        SELECT id, username, email, password_hash, role, created_at
        FROM   users
        WHERE  email = ?
        LIMIT  1`
	var rec Record
	if err := db.GetContext(ctx, &rec, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
