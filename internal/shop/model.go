// internal/shop/model.go
//
// `shops` table row model and its public view.
//
// Context
// -------
// A shop is a tenant record in the admin database.  Its `dsn` column points
// at the tenant's isolated catalog database and must never cross the API
// boundary.  Two types enforce that rule structurally:
//
//   - `Record` is the full internal row, DSN included.  It never carries
//     JSON tags for the DSN and is only handed to the catalog layer.
//   - `View` is what handlers serialize.  It has no DSN field at all, so a
//     leak is a compile error rather than a forgotten delete.
//
// Schema reference
//
//	CREATE TABLE shops (
//	    id          INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    name        VARCHAR(128)  NOT NULL,
//	    location    VARCHAR(256)  NOT NULL,
//	    dsn         VARCHAR(512)  NOT NULL,
//	    description TEXT NULL,
//	    image_url   VARCHAR(512) NULL,
//	    status      ENUM('active','pending','inactive') NOT NULL DEFAULT 'pending',
//	    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
//	    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
//	    INDEX idx_shops_name (name)
//	);
//
// Notes
// -----
// • Nullable columns are pointers; callers must nil-check before use.
// • Deleting a shop removes only this row.  The tenant database keeps its
//   categories and products (see DESIGN.md, open questions).
package shop

import "time"

// Shop lifecycle states.  New shops start as StatusPending until an
// operator flips them active.
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusPending || s == StatusInactive
}

// Record mirrors one row in the `shops` table, DSN included.  Internal
// use only; handlers serialize View instead.
type Record struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Location    string    `db:"location"`
	DSN         string    `db:"dsn"`
	Description *string   `db:"description"`
	ImageURL    *string   `db:"image_url"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// View is the public shape of a shop.  There is deliberately no DSN field.
type View struct {
	ID          uint64    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	Description *string   `db:"description" json:"description,omitempty"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// View maps the internal record to its public shape.  This is the single
// sanitization point between the two types.
func (r *Record) View() View {
	return View{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
