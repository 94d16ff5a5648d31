// internal/api/shop_handlers.go
//
// Shop CRUD and the connectivity probe endpoint.
//
// Context
// -------
// Shops are read and written through their public View, which has no DSN
// field, so no code path here can leak a tenant connection string.  Writes
// that introduce or change a DSN probe it synchronously first; a dead
// tenant database means a 400 and nothing persisted.

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/atelier/internal/shop"
)

// pathID parses a numeric URL parameter; ok == false means it was not a
// positive integer and the caller should 404.
func pathID(r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) handleListShops(w http.ResponseWriter, r *http.Request) {
	views, err := h.store.Shops(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleGetShop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "shopID")
	if !ok {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}
	v, err := h.store.Shop(r.Context(), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if v == nil {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) handleCreateShop(w http.ResponseWriter, r *http.Request) {
	var req createShopRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Probe before persisting; a shop record must never point at a
	// database we have not reached at least once.
	if !h.store.Probe(r.Context(), req.DSN) {
		writeError(w, http.StatusBadRequest, "tenant database is unreachable")
		return
	}

	v, err := h.store.CreateShop(r.Context(), shop.NewShop{
		Name:        req.Name,
		Location:    req.Location,
		DSN:         req.DSN,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleUpdateShop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "shopID")
	if !ok {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}

	var req updateShopRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Resolve the shop before any tenant-side work; a missing shop is a
	// 404 regardless of what the patch carries.
	existing, err := h.store.Shop(r.Context(), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}

	// Re-probe only when the patch changes the connection string.
	if req.DSN != nil && !h.store.Probe(r.Context(), *req.DSN) {
		writeError(w, http.StatusBadRequest, "tenant database is unreachable")
		return
	}

	v, err := h.store.UpdateShop(r.Context(), id, shop.Patch{
		Name:        req.Name,
		Location:    req.Location,
		DSN:         req.DSN,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
	})
	if err != nil {
		serverError(w, r, err)
		return
	}
	if v == nil {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) handleDeleteShop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "shopID")
	if !ok {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}

	// Tenant data is left in place on purpose; only the admin row goes.
	deleted, err := h.store.DeleteShop(r.Context(), id)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "shop not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTestConnection probes an arbitrary DSN.  It never fails; all
// failure modes collapse into {"reachable": false}.
func (h *Handler) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	var req testConnectionRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"reachable": h.store.Probe(r.Context(), req.DSN),
	})
}
