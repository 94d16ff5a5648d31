// internal/api/respond.go
//
// JSON response helpers shared by every handler.
//
// All payloads are JSON.  Errors use a single envelope, {"error": "…"},
// with the HTTP status carrying the taxonomy: 400 validation or
// unreachable tenant, 401 no session, 404 unresolved identifier, 409
// duplicate unique field, 500 everything else.  500s log the cause and
// return a generic message so driver errors never leak DSNs.

package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/yanizio/atelier/internal/middleware"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// serverError logs the real cause with the request ID and hides it from
// the client.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	zap.S().Errorw("request failed",
		"request_id", middleware.GetRequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, "internal error")
}
