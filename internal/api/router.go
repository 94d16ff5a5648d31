// internal/api/router.go
//
// Route table.
//
// Context
// -------
// One chi router serves the whole panel.  Registration and login are the
// only unauthenticated API routes; everything else sits behind the
// session gate.  /metrics and /healthz are left open for scrapers and
// load balancers.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanizio/atelier/internal/geo"
	"github.com/yanizio/atelier/internal/middleware"
	"github.com/yanizio/atelier/internal/session"
)

// Handler bundles the route layer's dependencies.
type Handler struct {
	store    Store
	sessions *session.Manager
}

// NewHandler wires the route layer.
func NewHandler(store Store, sessions *session.Manager) *Handler {
	return &Handler{store: store, sessions: sessions}
}

// Router builds the full HTTP surface.  The geo resolver may be nil.
func (h *Handler) Router(resolver *geo.Resolver) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(resolver))
	r.Use(middleware.Security)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(h.sessions))

			r.Post("/logout", h.handleLogout)
			r.Get("/stats", h.handleStats)
			r.Post("/test-connection", h.handleTestConnection)

			r.Route("/shops", func(r chi.Router) {
				r.Get("/", h.handleListShops)
				r.Post("/", h.handleCreateShop)

				r.Route("/{shopID}", func(r chi.Router) {
					r.Get("/", h.handleGetShop)
					r.Put("/", h.handleUpdateShop)
					r.Delete("/", h.handleDeleteShop)

					// Tenant-scoped routes resolve the DSN once up front.
					r.Group(func(r chi.Router) {
						r.Use(h.shopContext)

						r.Route("/categories", func(r chi.Router) {
							r.Get("/", h.handleListCategories)
							r.Post("/", h.handleCreateCategory)
							r.Get("/{categoryID}", h.handleGetCategory)
							r.Put("/{categoryID}", h.handleUpdateCategory)
							r.Delete("/{categoryID}", h.handleDeleteCategory)
						})

						r.Route("/products", func(r chi.Router) {
							r.Get("/", h.handleListProducts)
							r.Post("/", h.handleCreateProduct)
							r.Get("/{productID}", h.handleGetProduct)
							r.Put("/{productID}", h.handleUpdateProduct)
							r.Delete("/{productID}", h.handleDeleteProduct)
						})
					})
				})
			})
		})
	})

	return r
}
