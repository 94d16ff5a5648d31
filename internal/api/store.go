// internal/api/store.go
//
// Data-access seam for the route layer.
//
// Context
// -------
// Handlers never touch sqlx directly; they speak to Store, which mirrors
// the data-access surface one-to-one: admin-database lookups for users and
// shops, plus tenant-database catalog operations keyed by DSN.  SQLStore
// is the production implementation; tests substitute a fake.
//
// ShopInternal is the only method that exposes a DSN-bearing record, and
// its callers use it solely to route subsequent tenant operations.
package api

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/yanizio/atelier/internal/catalog"
	"github.com/yanizio/atelier/internal/shop"
	"github.com/yanizio/atelier/internal/user"
)

// Store is everything the route layer needs from persistence.
type Store interface {
	// Admin database: users.
	CreateUser(ctx context.Context, username, email, passwordHash, role string) (*user.Record, error)
	UserByEmail(ctx context.Context, email string) (*user.Record, error)
	UserByID(ctx context.Context, id uint64) (*user.Record, error)

	// Admin database: shops.
	Shops(ctx context.Context) ([]shop.View, error)
	Shop(ctx context.Context, id uint64) (*shop.View, error)
	ShopInternal(ctx context.Context, id uint64) (*shop.Record, error)
	CreateShop(ctx context.Context, in shop.NewShop) (*shop.View, error)
	UpdateShop(ctx context.Context, id uint64, p shop.Patch) (*shop.View, error)
	DeleteShop(ctx context.Context, id uint64) (bool, error)

	// Tenant databases, keyed by DSN.
	Probe(ctx context.Context, dsn string) bool
	Categories(ctx context.Context, dsn string) ([]catalog.Category, error)
	Category(ctx context.Context, dsn string, id uint64) (*catalog.Category, error)
	CreateCategory(ctx context.Context, dsn string, in catalog.NewCategory) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, dsn string, id uint64, p catalog.CategoryPatch) (*catalog.Category, error)
	DeleteCategory(ctx context.Context, dsn string, id uint64) (bool, error)
	Products(ctx context.Context, dsn, categorySlug string) ([]catalog.Product, error)
	Product(ctx context.Context, dsn string, id uint64) (*catalog.Product, error)
	CreateProduct(ctx context.Context, dsn string, in catalog.NewProduct) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, dsn string, id uint64, p catalog.ProductPatch) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, dsn string, id uint64) (bool, error)
	CountProducts(ctx context.Context, dsn string) (int, error)
}

// SQLStore implements Store over the admin pool and per-call tenant
// connections.
type SQLStore struct {
	admin *sqlx.DB
}

// NewSQLStore wraps the admin pool opened by cmd/admin.
func NewSQLStore(admin *sqlx.DB) *SQLStore { return &SQLStore{admin: admin} }

var _ Store = (*SQLStore)(nil)

func (s *SQLStore) CreateUser(ctx context.Context, username, email, passwordHash, role string) (*user.Record, error) {
	return user.Create(ctx, s.admin, username, email, passwordHash, role)
}

func (s *SQLStore) UserByEmail(ctx context.Context, email string) (*user.Record, error) {
	return user.ByEmail(ctx, s.admin, email)
}

func (s *SQLStore) UserByID(ctx context.Context, id uint64) (*user.Record, error) {
	return user.ByID(ctx, s.admin, id)
}

func (s *SQLStore) Shops(ctx context.Context) ([]shop.View, error) {
	return shop.All(ctx, s.admin)
}

func (s *SQLStore) Shop(ctx context.Context, id uint64) (*shop.View, error) {
	return shop.ByID(ctx, s.admin, id)
}

func (s *SQLStore) ShopInternal(ctx context.Context, id uint64) (*shop.Record, error) {
	return shop.ByIDInternal(ctx, s.admin, id)
}

func (s *SQLStore) CreateShop(ctx context.Context, in shop.NewShop) (*shop.View, error) {
	return shop.Create(ctx, s.admin, in)
}

func (s *SQLStore) UpdateShop(ctx context.Context, id uint64, p shop.Patch) (*shop.View, error) {
	return shop.Update(ctx, s.admin, id, p)
}

func (s *SQLStore) DeleteShop(ctx context.Context, id uint64) (bool, error) {
	return shop.Delete(ctx, s.admin, id)
}

func (s *SQLStore) Probe(ctx context.Context, dsn string) bool {
	return catalog.Probe(ctx, dsn)
}

func (s *SQLStore) Categories(ctx context.Context, dsn string) ([]catalog.Category, error) {
	return catalog.Categories(ctx, dsn)
}

func (s *SQLStore) Category(ctx context.Context, dsn string, id uint64) (*catalog.Category, error) {
	return catalog.CategoryByID(ctx, dsn, id)
}

func (s *SQLStore) CreateCategory(ctx context.Context, dsn string, in catalog.NewCategory) (*catalog.Category, error) {
	return catalog.CreateCategory(ctx, dsn, in)
}

func (s *SQLStore) UpdateCategory(ctx context.Context, dsn string, id uint64, p catalog.CategoryPatch) (*catalog.Category, error) {
	return catalog.UpdateCategory(ctx, dsn, id, p)
}

func (s *SQLStore) DeleteCategory(ctx context.Context, dsn string, id uint64) (bool, error) {
	return catalog.DeleteCategory(ctx, dsn, id)
}

func (s *SQLStore) Products(ctx context.Context, dsn, categorySlug string) ([]catalog.Product, error) {
	return catalog.Products(ctx, dsn, categorySlug)
}

func (s *SQLStore) Product(ctx context.Context, dsn string, id uint64) (*catalog.Product, error) {
	return catalog.ProductByID(ctx, dsn, id)
}

func (s *SQLStore) CreateProduct(ctx context.Context, dsn string, in catalog.NewProduct) (*catalog.Product, error) {
	return catalog.CreateProduct(ctx, dsn, in)
}

func (s *SQLStore) UpdateProduct(ctx context.Context, dsn string, id uint64, p catalog.ProductPatch) (*catalog.Product, error) {
	return catalog.UpdateProduct(ctx, dsn, id, p)
}

func (s *SQLStore) DeleteProduct(ctx context.Context, dsn string, id uint64) (bool, error) {
	return catalog.DeleteProduct(ctx, dsn, id)
}

func (s *SQLStore) CountProducts(ctx context.Context, dsn string) (int, error) {
	return catalog.CountProducts(ctx, dsn)
}
