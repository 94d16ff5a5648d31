// internal/api/auth_handlers.go
//
// Account lifecycle: register, login, logout.
//
// Registration and login sit outside the session gate.  Logout requires an
// active session, matching the rest of the authenticated surface.

package api

import (
	"errors"
	"net/http"

	"github.com/yanizio/atelier/internal/user"
)

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	role := req.Role
	if role == "" {
		role = user.RoleAdmin
	}

	hash, err := user.HashPassword(req.Password)
	if err != nil {
		serverError(w, r, err)
		return
	}

	rec, err := h.store.CreateUser(r.Context(), req.Username, req.Email, hash, role)
	if err != nil {
		if errors.Is(err, user.ErrConflict) {
			writeError(w, http.StatusConflict, "username or email already in use")
			return
		}
		serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if msg, ok := decodeValid(r, &req); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	rec, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		serverError(w, r, err)
		return
	}
	if rec == nil || !rec.CheckPassword(req.Password) {
		// Same message either way; do not reveal which part was wrong.
		writeError(w, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	h.sessions.Login(w, r, rec.ID)
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	w.WriteHeader(http.StatusNoContent)
}
