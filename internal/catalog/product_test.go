// internal/catalog/product_test.go
//
// Unit-tests for the product query functions using sqlmock.
//
// Run: go test ./internal/catalog -v

package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func productCols() []string {
	return []string{"id", "name", "category", "price", "original_price", "discount_pct",
		"material", "description", "images", "colors", "in_stock",
		"collection_type", "rating", "review_count", "created_at", "updated_at"}
}

func TestListProductsCategoryFilter(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT (.+) FROM\s+products\s+WHERE\s+category = \?`).
		WithArgs("shirts").
		WillReturnRows(sqlmock.NewRows(productCols()).
			AddRow(1, "Oxford Shirt", "shirts", 39.9, nil, nil,
				nil, "classic", `["a.jpg"]`, `["white"]`, true,
				nil, nil, nil, now, now))

	products, err := listProducts(context.Background(), db, "shirts")
	if err != nil {
		t.Fatalf("listProducts error: %v", err)
	}
	if len(products) != 1 || products[0].Category != "shirts" {
		t.Fatalf("unexpected products: %+v", products)
	}
	if len(products[0].Images) != 1 || products[0].Images[0] != "a.jpg" {
		t.Fatalf("images not scanned from JSON: %+v", products[0].Images)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestListProductsNoFilter(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT (.+) FROM\s+products$`).
		WillReturnRows(sqlmock.NewRows(productCols()).
			AddRow(1, "Oxford Shirt", "shirts", 39.9, nil, nil,
				nil, "classic", `[]`, `[]`, true, nil, nil, nil, now, now).
			AddRow(2, "Wool Coat", "coats", 189.0, nil, nil,
				nil, "warm", `[]`, `[]`, false, nil, nil, nil, now, now))

	products, err := listProducts(context.Background(), db, "")
	if err != nil {
		t.Fatalf("listProducts error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2 (full set)", len(products))
	}
}

// The category slug is convention only; inserting a product whose slug has
// no matching categories row succeeds.
func TestInsertProductUnknownCategorySlug(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	mock.ExpectExec("INSERT INTO products").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery(`(?s)SELECT (.+) FROM\s+products\s+WHERE\s+id = \?`).
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows(productCols()).
			AddRow(9, "Mystery Tee", "no-such-category", 19.0, nil, nil,
				nil, "t", `[]`, `[]`, true, nil, nil, nil, now, now))

	p, err := insertProduct(context.Background(), db, NewProduct{
		Name:        "Mystery Tee",
		Category:    "no-such-category",
		Price:       19.0,
		Description: "t",
		InStock:     true,
	})
	if err != nil {
		t.Fatalf("insertProduct error: %v", err)
	}
	if p.Category != "no-such-category" {
		t.Fatalf("category = %q", p.Category)
	}
}

func TestPatchProductPartial(t *testing.T) {
	db, mock := newMock(t)

	price := 29.5
	inStock := false
	now := time.Now()

	mock.ExpectExec(`UPDATE products SET price = \?, in_stock = \?, updated_at = CURRENT_TIMESTAMP WHERE id = \?`).
		WithArgs(price, inStock, uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`(?s)SELECT (.+) FROM\s+products\s+WHERE\s+id = \?`).
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows(productCols()).
			AddRow(9, "Mystery Tee", "shirts", price, nil, nil,
				nil, "t", `[]`, `[]`, inStock, nil, nil, nil, now, now))

	p, err := patchProduct(context.Background(), db, 9, ProductPatch{Price: &price, InStock: &inStock})
	if err != nil {
		t.Fatalf("patchProduct error: %v", err)
	}
	if p.Price != price || p.InStock {
		t.Fatalf("unexpected product: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != `["a","b"]` {
		t.Fatalf("Value = %v", v)
	}

	v, err = StringList(nil).Value()
	if err != nil || v != "[]" {
		t.Fatalf("nil list Value = %v, %v", v, err)
	}
}
