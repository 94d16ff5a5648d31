// internal/user/model.go
//
// `users` table row model.
//
// Context
// -------
// The `Record` struct mirrors one row in the admin database's **users**
// table.  Operators are created at registration and never updated or
// deleted; the login flow reads them by email and the session middleware
// by ID.
//
// Schema reference
//
//	CREATE TABLE users (
//	    id            INT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
//	    username      VARCHAR(64)   NOT NULL UNIQUE,
//	    email         VARCHAR(256)  NOT NULL UNIQUE,
//	    password_hash VARCHAR(128)  NOT NULL,
//	    role          ENUM('admin','staff') NOT NULL DEFAULT 'admin',
//	    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
//
// Notes
// -----
// • The password hash is bcrypt; it never serializes (json:"-").
// • This struct contains no behaviour beyond password checks.
package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Roles an operator may hold.  New accounts default to RoleAdmin; the
// original panel had no self-service signup for lesser roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// ValidRole reports whether r is a member of the role enumeration.
func ValidRole(r string) bool { return r == RoleAdmin || r == RoleStaff }

// Record mirrors one row in the `users` table.
type Record struct {
	ID           uint64    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// HashPassword bcrypts a plaintext password with the default cost.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *Record) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
