// internal/session/session.go
//
// Signed-cookie sessions.
//
// Context
// -------
// Authentication must persist a “logged-in” flag between requests.  A
// Manager issues a cookie named “atelier_session” whose value is
// `<userID>.<expiry>.<signature>`, where the signature is an HMAC-SHA256
// over the first two fields keyed by the configured session secret.  The
// server stores nothing; tampering with either field invalidates the
// signature, and the expiry is enforced on every read.
//
// All callers (the auth handlers, and the RequireAuth middleware) rely
// only on Login, Logout, and UserID, so swapping the implementation for a
// server-side store later is painless.
//
//------------------------------------------------------------------------------

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const cookieName = "atelier_session"

// Manager signs and verifies session cookies.  Safe for concurrent use.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager builds a Manager from the configured secret and TTL.  The
// config validator guarantees the secret is at least 32 bytes.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Login sets a signed session cookie for userID.
//
// Callers invoke this only after credential verification succeeds.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID uint64) {
	exp := time.Now().Add(m.ttl)
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    m.token(userID, exp.Unix()),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil, // only send over HTTPS
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

// Logout clears the session cookie.  The deletion cookie carries the same
// attributes as Login's; browsers key cookies on more than the name, and a
// mismatched clear can leave the original standing.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// UserID returns the user stored in the session cookie.
//
// ok == false when the cookie is missing, malformed, expired, or carries a
// bad signature.
func (m *Manager) UserID(r *http.Request) (userID uint64, ok bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}

	parts := strings.Split(c.Value, ".")
	if len(parts) != 3 {
		return 0, false
	}

	uid, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, false
	}
	exp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || time.Now().Unix() > exp {
		return 0, false
	}

	want := m.sign(parts[0] + "." + parts[1])
	if !hmac.Equal([]byte(want), []byte(parts[2])) {
		return 0, false
	}
	return uid, true
}

func (m *Manager) token(userID uint64, exp int64) string {
	payload := fmt.Sprintf("%d.%d", userID, exp)
	return payload + "." + m.sign(payload)
}

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
