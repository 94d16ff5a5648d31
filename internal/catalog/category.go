// internal/catalog/category.go
//
// Tenant `categories` collection.
//
// Context
// -------
// Categories live only inside a shop's isolated database.  Each exported
// helper takes the tenant DSN, opens one throwaway connection via
// withTenant, and delegates to an unexported query function that takes a
// *sqlx.DB.  The split keeps the open/close discipline in one place and
// lets tests drive the query functions against sqlmock.
//
// Schema reference (per tenant database)
//
//	CREATE TABLE categories (
//	    id          INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    name        VARCHAR(128)  NOT NULL,
//	    slug        VARCHAR(128)  NOT NULL UNIQUE,
//	    description TEXT NOT NULL,
//	    image_url   VARCHAR(512) NULL,
//	    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	);
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Category mirrors one row in a tenant's `categories` table.
type Category struct {
	ID          uint64    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// NewCategory carries the caller-supplied fields for CreateCategory.  An
// empty Slug is derived from Name via MakeSlug.
type NewCategory struct {
	Name        string
	Slug        string
	Description string
	ImageURL    *string
}

// CategoryPatch carries a partial update; nil fields are left untouched.
type CategoryPatch struct {
	Name        *string
	Slug        *string
	Description *string
	ImageURL    *string
}

const categoryColumns = `id, name, slug, description, image_url, created_at, updated_at`

/*──────────────────────────── DSN wrappers ────────────────────────────────*/

// Categories lists a tenant's categories in natural order.
func Categories(ctx context.Context, dsn string) ([]Category, error) {
	var out []Category
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = listCategories(ctx, db)
		return err
	})
	return out, err
}

// CategoryByID fetches one category.  (nil, nil) when absent.
func CategoryByID(ctx context.Context, dsn string, id uint64) (*Category, error) {
	var out *Category
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = getCategory(ctx, db, id)
		return err
	})
	return out, err
}

// CreateCategory inserts a category and returns the stored row.
func CreateCategory(ctx context.Context, dsn string, in NewCategory) (*Category, error) {
	var out *Category
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = insertCategory(ctx, db, in)
		return err
	})
	return out, err
}

// UpdateCategory applies a partial patch.  (nil, nil) when absent.
func UpdateCategory(ctx context.Context, dsn string, id uint64, p CategoryPatch) (*Category, error) {
	var out *Category
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = patchCategory(ctx, db, id, p)
		return err
	})
	return out, err
}

// DeleteCategory removes a category row.  Products referencing its slug
// are left alone; the reference was never enforced.
func DeleteCategory(ctx context.Context, dsn string, id uint64) (bool, error) {
	var ok bool
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		ok, err = removeCategory(ctx, db, id)
		return err
	})
	return ok, err
}

/*──────────────────────────── query functions ─────────────────────────────*/

func listCategories(ctx context.Context, db *sqlx.DB) ([]Category, error) {
	const q = `
        SELECT ` + categoryColumns + `
        FROM   categories`
	cats := make([]Category, 0, 16)
	if err := db.SelectContext(ctx, &cats, q); err != nil {
		return nil, err
	}
	return cats, nil
}

func getCategory(ctx context.Context, db *sqlx.DB, id uint64) (*Category, error) {
	const q = `
        SELECT ` + categoryColumns + `
        FROM   categories
        WHERE  id = ?
        LIMIT  1`
	var c Category
	if err := db.GetContext(ctx, &c, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func insertCategory(ctx context.Context, db *sqlx.DB, in NewCategory) (*Category, error) {
	if in.Slug == "" {
		in.Slug = MakeSlug(in.Name)
	}

	const q = `
        INSERT INTO categories (name, slug, description, image_url)
        VALUES (?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, q, in.Name, in.Slug, in.Description, in.ImageURL)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return getCategory(ctx, db, uint64(id))
}

func patchCategory(ctx context.Context, db *sqlx.DB, id uint64, p CategoryPatch) (*Category, error) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Slug != nil {
		add("slug", *p.Slug)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ImageURL != nil {
		add("image_url", *p.ImageURL)
	}
	set = append(set, "updated_at = CURRENT_TIMESTAMP")

	q := `UPDATE categories SET ` + strings.Join(set, ", ") + ` WHERE id = ?`
	args = append(args, id)

	if _, err := db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return getCategory(ctx, db, id)
}

func removeCategory(ctx context.Context, db *sqlx.DB, id uint64) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
