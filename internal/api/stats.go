// internal/api/stats.go
//
// Dashboard aggregate.
//
// Context
// -------
// GET /stats walks every active shop *sequentially*, opening one tenant
// connection per shop to count its products.  A shop whose tenant
// database does not answer is logged, counted on /metrics, and simply
// left out of the product total; the aggregate itself never fails.

package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/atelier/internal/metrics"
	"github.com/yanizio/atelier/internal/shop"
)

type statsResponse struct {
	Shops         int `json:"shops"`
	ActiveShops   int `json:"activeShops"`
	TotalProducts int `json:"totalProducts"`
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	views, err := h.store.Shops(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	resp := statsResponse{Shops: len(views)}

	for _, v := range views {
		if v.Status != shop.StatusActive {
			continue
		}
		resp.ActiveShops++

		rec, err := h.store.ShopInternal(r.Context(), v.ID)
		if err != nil || rec == nil {
			metrics.StatsShopsSkippedTotal.Inc()
			zap.S().Warnw("stats: shop skipped", "shop_id", v.ID, "err", err)
			continue
		}

		n, err := h.store.CountProducts(r.Context(), rec.DSN)
		if err != nil {
			// Unreachable tenant: omit this shop's contribution.
			metrics.StatsShopsSkippedTotal.Inc()
			zap.S().Warnw("stats: tenant count failed", "shop_id", v.ID, "err", err)
			continue
		}
		resp.TotalProducts += n
	}

	writeJSON(w, http.StatusOK, resp)
}
