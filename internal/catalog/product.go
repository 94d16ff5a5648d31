// internal/catalog/product.go
//
// Tenant `products` collection.
//
// Context
// -------
// Products live only inside a shop's isolated database.  The `category`
// column holds a category slug as free text; nothing ties it to a real
// `categories` row, and creating a product with an unknown slug succeeds.
// Consistency is by convention, exactly as the panel always behaved.
//
// Schema reference (per tenant database)
//
//	CREATE TABLE products (
//	    id              INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    name            VARCHAR(256)  NOT NULL,
//	    category        VARCHAR(128)  NOT NULL,
//	    price           DOUBLE        NOT NULL,
//	    original_price  DOUBLE NULL,
//	    discount_pct    DOUBLE NULL,
//	    material        VARCHAR(128) NULL,
//	    description     TEXT NOT NULL,
//	    images          JSON NOT NULL,
//	    colors          JSON NOT NULL,
//	    in_stock        TINYINT(1) NOT NULL DEFAULT 1,
//	    collection_type VARCHAR(64) NULL,
//	    rating          DOUBLE NULL,
//	    review_count    INT NULL,
//	    created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • Prices are DOUBLE, not DECIMAL, preserving the original store's
//   number semantics.
// • `images` and `colors` are JSON arrays of strings scanned through the
//   StringList adapter below.
package catalog

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// StringList maps a JSON array column to []string for sqlx scans.
type StringList []string

// Value implements driver.Valuer.  A nil list stores as "[]".
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(s))
	default:
		return fmt.Errorf("catalog: cannot scan %T into StringList", src)
	}
}

// Product mirrors one row in a tenant's `products` table.
type Product struct {
	ID             uint64     `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Category       string     `db:"category" json:"category"`
	Price          float64    `db:"price" json:"price"`
	OriginalPrice  *float64   `db:"original_price" json:"originalPrice,omitempty"`
	DiscountPct    *float64   `db:"discount_pct" json:"discountPct,omitempty"`
	Material       *string    `db:"material" json:"material,omitempty"`
	Description    string     `db:"description" json:"description"`
	Images         StringList `db:"images" json:"images"`
	Colors         StringList `db:"colors" json:"colors"`
	InStock        bool       `db:"in_stock" json:"inStock"`
	CollectionType *string    `db:"collection_type" json:"collectionType,omitempty"`
	Rating         *float64   `db:"rating" json:"rating,omitempty"`
	ReviewCount    *int       `db:"review_count" json:"reviewCount,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// NewProduct carries the caller-supplied fields for CreateProduct.
type NewProduct struct {
	Name           string
	Category       string
	Price          float64
	OriginalPrice  *float64
	DiscountPct    *float64
	Material       *string
	Description    string
	Images         StringList
	Colors         StringList
	InStock        bool
	CollectionType *string
	Rating         *float64
	ReviewCount    *int
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name           *string
	Category       *string
	Price          *float64
	OriginalPrice  *float64
	DiscountPct    *float64
	Material       *string
	Description    *string
	Images         *StringList
	Colors         *StringList
	InStock        *bool
	CollectionType *string
	Rating         *float64
	ReviewCount    *int
}

const productColumns = `id, name, category, price, original_price, discount_pct,
               material, description, images, colors, in_stock,
               collection_type, rating, review_count, created_at, updated_at`

/*──────────────────────────── DSN wrappers ────────────────────────────────*/

// Products lists a tenant's products, optionally filtered to an exact
// category slug.  Empty slug returns the full set.  Natural order only.
func Products(ctx context.Context, dsn, categorySlug string) ([]Product, error) {
	var out []Product
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = listProducts(ctx, db, categorySlug)
		return err
	})
	return out, err
}

// ProductByID fetches one product.  (nil, nil) when absent.
func ProductByID(ctx context.Context, dsn string, id uint64) (*Product, error) {
	var out *Product
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = getProduct(ctx, db, id)
		return err
	})
	return out, err
}

// CreateProduct inserts a product and returns the stored row.  The
// category slug is not checked against the categories table.
func CreateProduct(ctx context.Context, dsn string, in NewProduct) (*Product, error) {
	var out *Product
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = insertProduct(ctx, db, in)
		return err
	})
	return out, err
}

// UpdateProduct applies a partial patch.  (nil, nil) when absent.
func UpdateProduct(ctx context.Context, dsn string, id uint64, p ProductPatch) (*Product, error) {
	var out *Product
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		out, err = patchProduct(ctx, db, id, p)
		return err
	})
	return out, err
}

// DeleteProduct removes a product row.
func DeleteProduct(ctx context.Context, dsn string, id uint64) (bool, error) {
	var ok bool
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		var err error
		ok, err = removeProduct(ctx, db, id)
		return err
	})
	return ok, err
}

// CountProducts returns the size of a tenant's products table.  Used only
// by the stats aggregation.
func CountProducts(ctx context.Context, dsn string) (int, error) {
	var n int
	err := withTenant(ctx, dsn, func(db *sqlx.DB) error {
		return db.GetContext(ctx, &n, `SELECT COUNT(*) FROM products`)
	})
	return n, err
}

/*──────────────────────────── query functions ─────────────────────────────*/

func listProducts(ctx context.Context, db *sqlx.DB, categorySlug string) ([]Product, error) {
	products := make([]Product, 0, 32)

	if categorySlug == "" {
		const q = `
        SELECT ` + productColumns + `
        FROM   products`
		if err := db.SelectContext(ctx, &products, q); err != nil {
			return nil, err
		}
		return products, nil
	}

	const q = `
        SELECT ` + productColumns + `
        FROM   products
        WHERE  category = ?`
	if err := db.SelectContext(ctx, &products, q, categorySlug); err != nil {
		return nil, err
	}
	return products, nil
}

func getProduct(ctx context.Context, db *sqlx.DB, id uint64) (*Product, error) {
	const q = `
        SELECT ` + productColumns + `
        FROM   products
        WHERE  id = ?
        LIMIT  1`
	var p Product
	if err := db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func insertProduct(ctx context.Context, db *sqlx.DB, in NewProduct) (*Product, error) {
	const q = `
        INSERT INTO products (name, category, price, original_price, discount_pct,
                              material, description, images, colors, in_stock,
                              collection_type, rating, review_count)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := db.ExecContext(ctx, q,
		in.Name, in.Category, in.Price, in.OriginalPrice, in.DiscountPct,
		in.Material, in.Description, in.Images, in.Colors, in.InStock,
		in.CollectionType, in.Rating, in.ReviewCount)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return getProduct(ctx, db, uint64(id))
}

func patchProduct(ctx context.Context, db *sqlx.DB, id uint64, p ProductPatch) (*Product, error) {
	set := make([]string, 0, 14)
	args := make([]any, 0, 15)

	add := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.Price != nil {
		add("price", *p.Price)
	}
	if p.OriginalPrice != nil {
		add("original_price", *p.OriginalPrice)
	}
	if p.DiscountPct != nil {
		add("discount_pct", *p.DiscountPct)
	}
	if p.Material != nil {
		add("material", *p.Material)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Images != nil {
		add("images", *p.Images)
	}
	if p.Colors != nil {
		add("colors", *p.Colors)
	}
	if p.InStock != nil {
		add("in_stock", *p.InStock)
	}
	if p.CollectionType != nil {
		add("collection_type", *p.CollectionType)
	}
	if p.Rating != nil {
		add("rating", *p.Rating)
	}
	if p.ReviewCount != nil {
		add("review_count", *p.ReviewCount)
	}
	set = append(set, "updated_at = CURRENT_TIMESTAMP")

	q := `UPDATE products SET ` + strings.Join(set, ", ") + ` WHERE id = ?`
	args = append(args, id)

	if _, err := db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return getProduct(ctx, db, id)
}

func removeProduct(ctx context.Context, db *sqlx.DB, id uint64) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
