// internal/shop/repository_test.go
//
// Unit-tests for the shops repository using sqlmock.
//
// Run: go test ./internal/shop -v

package shop

import (
	"context"
	"encoding/json"
	"strings"
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

func viewCols() []string {
	return []string{"id", "name", "location", "description", "image_url", "status", "created_at", "updated_at"}
}

func TestAllScansIntoView(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, location, description, image_url, status").
		WillReturnRows(sqlmock.NewRows(viewCols()).
			AddRow(1, "Maison", "Paris", nil, nil, StatusActive, now, now).
			AddRow(2, "Loft", "Berlin", "street wear", nil, StatusPending, now, now))

	views, err := All(context.Background(), db)
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("len = %d, want 2", len(views))
	}
	if views[0].Name != "Maison" || views[1].Status != StatusPending {
		t.Fatalf("unexpected views: %+v", views)
	}
}

// The serialized view must never contain a DSN, whatever the row holds.
func TestViewSerializationOmitsDSN(t *testing.T) {
	rec := Record{
		ID:       9,
		Name:     "Maison",
		Location: "Paris",
		DSN:      "admin:secret@tcp(tenant-9:3306)/maison",
		Status:   StatusActive,
	}

	raw, err := json.Marshal(rec.View())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "secret") || strings.Contains(strings.ToLower(string(raw)), "dsn") {
		t.Fatalf("view leaked connection details: %s", raw)
	}
}

func TestByIDMissing(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT id, name, location, description, image_url, status").
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows(viewCols()))

	v, err := ByID(context.Background(), db, 404)
	if err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil view, got %+v", v)
	}
}

func TestCreateDefaultsStatusPending(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	mock.ExpectExec("INSERT INTO shops").
		WithArgs("Maison", "Paris", "dsn://tenant", nil, nil, StatusPending).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("SELECT id, name, location, description, image_url, status").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(viewCols()).
			AddRow(3, "Maison", "Paris", nil, nil, StatusPending, now, now))

	v, err := Create(context.Background(), db, NewShop{
		Name: "Maison", Location: "Paris", DSN: "dsn://tenant",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if v.Status != StatusPending {
		t.Fatalf("status = %q, want pending", v.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestUpdatePartialPatch(t *testing.T) {
	db, mock := newMock(t)

	name := "Maison Neue"
	now := time.Now()

	// Only name is patched; updated_at is still touched.
	mock.ExpectExec(`UPDATE shops SET name = \?, updated_at = CURRENT_TIMESTAMP WHERE id = \?`).
		WithArgs(name, uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, name, location, description, image_url, status").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(viewCols()).
			AddRow(3, name, "Paris", nil, nil, StatusActive, now, now))

	v, err := Update(context.Background(), db, 3, Patch{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if v == nil || v.Name != name {
		t.Fatalf("unexpected view: %+v", v)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestUpdateMissingShop(t *testing.T) {
	db, mock := newMock(t)

	status := StatusInactive
	mock.ExpectExec(`UPDATE shops SET status = \?, updated_at = CURRENT_TIMESTAMP WHERE id = \?`).
		WithArgs(status, uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, name, location, description, image_url, status").
		WithArgs(uint64(404)).
		WillReturnRows(sqlmock.NewRows(viewCols()))

	v, err := Update(context.Background(), db, 404, Patch{Status: &status})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil view for missing shop, got %+v", v)
	}
}

func TestDelete(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM shops WHERE id = \?`).
		WithArgs(uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := Delete(context.Background(), db, 3)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok = true")
	}
}
