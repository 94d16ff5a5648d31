// internal/shop/repository.go
//
// Shops-table query helpers.
//
// Workflow
// --------
//  1. Callers supply the *sqlx.DB admin pool opened at boot.
//  2. Each helper executes exactly one parameterised statement (Create and
//     Update re-read the row so callers get database-assigned timestamps).
//  3. Point lookups return (nil, nil) when no row matches.
//
// Notes
// -----
//   - All and ByID scan straight into View, so the DSN column never leaves
//     this package through the public read path.
//   - ByIDInternal is the sole DSN escape hatch.  The route layer calls it
//     to resolve the tenant connection string and passes the DSN to the
//     catalog layer; the Record itself is never serialized.
//   - Connectivity preconditions (probing a DSN before Create, or before an
//     Update that changes the DSN) belong to the caller, not this package.
package shop

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
)

const viewColumns = `id, name, location, description, image_url, status, created_at, updated_at`

// NewShop carries the caller-supplied fields for Create.
type NewShop struct {
	Name        string
	Location    string
	DSN         string
	Description *string
	ImageURL    *string
	Status      string // defaults to StatusPending when empty
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name        *string
	Location    *string
	DSN         *string
	Description *string
	ImageURL    *string
	Status      *string
}

// All returns every shop as its public view, natural order.
func All(ctx context.Context, db *sqlx.DB) ([]View, error) {
	const q = `
        SELECT ` + viewColumns + `
        FROM   shops`
	views := make([]View, 0, 16)
	if err := db.SelectContext(ctx, &views, q); err != nil {
		return nil, err
	}
	return views, nil
}

// ByID fetches a single shop as its public view.  (nil, nil) when absent.
func ByID(ctx context.Context, db *sqlx.DB, id uint64) (*View, error) {
	const q = `
        SELECT ` + viewColumns + `
        FROM   shops
        WHERE  id = ?
        LIMIT  1`
	var v View
	if err := db.GetContext(ctx, &v, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// ByIDInternal fetches the full row including the DSN.  Only the route
// layer calls this, and only to route subsequent tenant operations.
// (nil, nil) when absent.
func ByIDInternal(ctx context.Context, db *sqlx.DB, id uint64) (*Record, error) {
	const q = `
        SELECT id, name, location, dsn, description, image_url, status,
               created_at, updated_at
        FROM   shops
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

// Create inserts a shop and returns its public view.  The caller must have
// probed the DSN already.
func Create(ctx context.Context, db *sqlx.DB, in NewShop) (*View, error) {
	if in.Status == "" {
		in.Status = StatusPending
	}

	const q = `
        INSERT INTO shops (name, location, dsn, description, image_url, status)
        VALUES (?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, q,
		in.Name, in.Location, in.DSN, in.Description, in.ImageURL, in.Status)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return ByID(ctx, db, uint64(id))
}

// Update applies a partial patch and returns the refreshed view, or
// (nil, nil) when no shop matches.  updated_at is always touched, even for
// an empty patch, mirroring the panel's original behaviour.
func Update(ctx context.Context, db *sqlx.DB, id uint64, p Patch) (*View, error) {
	set := make([]string, 0, 7)
	args := make([]any, 0, 8)

	add := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Location != nil {
		add("location", *p.Location)
	}
	if p.DSN != nil {
		add("dsn", *p.DSN)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	set = append(set, "updated_at = CURRENT_TIMESTAMP")

	q := `UPDATE shops SET ` + strings.Join(set, ", ") + ` WHERE id = ?`
	args = append(args, id)

	if _, err := db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return ByID(ctx, db, id)
}

// Delete removes the admin-database row.  It does not reach into the
// tenant database; orphaned categories and products are intentional.
// Returns false when no shop matched.
func Delete(ctx context.Context, db *sqlx.DB, id uint64) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM shops WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
