// internal/user/repository_test.go
//
// Unit-tests for the users repository using sqlmock.
//
// Run: go test ./internal/user -v

package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func userColumns() []string {
	return []string{"id", "username", "email", "password_hash", "role", "created_at"}
}

func TestCreate(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("ada", "ada@example.com", "$2a$10$hash", RoleAdmin).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT id, username, email, password_hash, role, created_at").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(7, "ada", "ada@example.com", "$2a$10$hash", RoleAdmin, time.Now()))

	rec, err := Create(context.Background(), db, "ada", "ada@example.com", "$2a$10$hash", RoleAdmin)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.ID != 7 || rec.Username != "ada" || rec.Role != RoleAdmin {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("ada", "ada@example.com", "$2a$10$hash", RoleAdmin).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := Create(context.Background(), db, "ada", "ada@example.com", "$2a$10$hash", RoleAdmin)
	if err != ErrConflict {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestByEmailMissing(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT id, username, email, password_hash, role, created_at").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	rec, err := ByEmail(context.Background(), db, "ghost@example.com")
	if err != nil {
		t.Fatalf("ByEmail error: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record for missing email, got %+v", rec)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	rec := &Record{PasswordHash: hash}
	if !rec.CheckPassword("hunter22") {
		t.Fatal("correct password rejected")
	}
	if rec.CheckPassword("wrong") {
		t.Fatal("wrong password accepted")
	}
}
