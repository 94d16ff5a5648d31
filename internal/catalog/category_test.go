// internal/catalog/category_test.go
//
// Unit-tests for the category query functions using sqlmock.  The DSN
// wrappers are exercised end-to-end only against a real tenant database;
// these tests pin the SQL layer underneath them.
//
// Run: go test ./internal/catalog -v

package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func categoryCols() []string {
	return []string{"id", "name", "slug", "description", "image_url", "created_at", "updated_at"}
}

func TestInsertCategoryDerivesSlug(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	mock.ExpectExec("INSERT INTO categories").
		WithArgs("Summer Dresses", "summer-dresses", "lightweight", nil).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT id, name, slug, description, image_url").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(categoryCols()).
			AddRow(5, "Summer Dresses", "summer-dresses", "lightweight", nil, now, now))

	c, err := insertCategory(context.Background(), db, NewCategory{
		Name:        "Summer Dresses",
		Description: "lightweight",
	})
	if err != nil {
		t.Fatalf("insertCategory error: %v", err)
	}
	if c.Slug != "summer-dresses" {
		t.Fatalf("slug = %q, want derived slug", c.Slug)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestGetCategoryMissing(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT id, name, slug, description, image_url").
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows(categoryCols()))

	c, err := getCategory(context.Background(), db, 404)
	if err != nil {
		t.Fatalf("getCategory error: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil category, got %+v", c)
	}
}

func TestPatchCategoryTouchesUpdatedAt(t *testing.T) {
	db, mock := newMock(t)

	name := "Dresses"
	now := time.Now()
	mock.ExpectExec(`UPDATE categories SET name = \?, updated_at = CURRENT_TIMESTAMP WHERE id = \?`).
		WithArgs(name, uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, name, slug, description, image_url").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(categoryCols()).
			AddRow(5, name, "summer-dresses", "lightweight", nil, now, now))

	c, err := patchCategory(context.Background(), db, 5, CategoryPatch{Name: &name})
	if err != nil {
		t.Fatalf("patchCategory error: %v", err)
	}
	if c == nil || c.Name != name {
		t.Fatalf("unexpected category: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestRemoveCategory(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM categories WHERE id = \?`).
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := removeCategory(context.Background(), db, 5)
	if err != nil {
		t.Fatalf("removeCategory error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok = true")
	}
}
