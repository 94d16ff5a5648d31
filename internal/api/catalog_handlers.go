// internal/api/catalog_handlers.go
//
// Tenant-scoped category and product CRUD.
//
// Context
// -------
// Every route under /shops/{shopID}/… first resolves the shop through
// ShopInternal to obtain the tenant DSN; a missing shop is a 404 before
// any tenant-database call is attempted.  The shopContext middleware does
// that resolution once per request and stashes the DSN in the request
// context.

package api

import (
	"context"
	"net/http"

	"github.com/yanizio/atelier/internal/catalog"
)

type tenantDSNKey struct{}

// shopContext resolves {shopID} to its tenant DSN or 404s.
func (h *Handler) shopContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "shopID")
		if !ok {
			writeError(w, http.StatusNotFound, "shop not found")
			return
		}
		rec, err := h.store.ShopInternal(r.Context(), id)
		if err != nil {
			serverError(w, r, err)
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "shop not found")
			return
		}
		ctx := context.WithValue(r.Context(), tenantDSNKey{}, rec.DSN)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tenantDSN(ctx context.Context) string {
	dsn, _ := ctx.Value(tenantDSNKey{}).(string)
	return dsn
}

/*──────────────────────────── categories ──────────────────────────────────*/

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.Categories(r.Context(), tenantDSN(r.Context()))
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h *Handler) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "categoryID")
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	c, err := h.store.Category(r.Context(), tenantDSN(r.Context()), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := h.store.CreateCategory(r.Context(), tenantDSN(r.Context()), catalog.NewCategory{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "categoryID")
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	var req updateCategoryRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := h.store.UpdateCategory(r.Context(), tenantDSN(r.Context()), id, catalog.CategoryPatch{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "categoryID")
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	deleted, err := h.store.DeleteCategory(r.Context(), tenantDSN(r.Context()), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/*──────────────────────────── products ────────────────────────────────────*/

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	// Optional exact-match filter on category slug.
	slug := r.URL.Query().Get("category")

	products, err := h.store.Products(r.Context(), tenantDSN(r.Context()), slug)
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	p, err := h.store.Product(r.Context(), tenantDSN(r.Context()), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	p, err := h.store.CreateProduct(r.Context(), tenantDSN(r.Context()), catalog.NewProduct{
		Name:           req.Name,
		Category:       req.Category, // convention-only slug, not checked
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		DiscountPct:    req.DiscountPct,
		Material:       req.Material,
		Description:    req.Description,
		Images:         req.Images,
		Colors:         req.Colors,
		InStock:        inStock,
		CollectionType: req.CollectionType,
		Rating:         req.Rating,
		ReviewCount:    req.ReviewCount,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	var req updateProductRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p, err := h.store.UpdateProduct(r.Context(), tenantDSN(r.Context()), id, catalog.ProductPatch{
		Name:           req.Name,
		Category:       req.Category,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		DiscountPct:    req.DiscountPct,
		Material:       req.Material,
		Description:    req.Description,
		Images:         req.Images,
		Colors:         req.Colors,
		InStock:        req.InStock,
		CollectionType: req.CollectionType,
		Rating:         req.Rating,
		ReviewCount:    req.ReviewCount,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "productID")
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	deleted, err := h.store.DeleteProduct(r.Context(), tenantDSN(r.Context()), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
