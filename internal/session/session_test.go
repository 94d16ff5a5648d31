// internal/session/session_test.go
//
// Unit-tests for the signed-cookie session Manager.
//
// Run: go test ./internal/session -v

package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager("0123456789abcdef0123456789abcdef", ttl)
}

// requestWithCookie builds a GET request carrying the Set-Cookie emitted by w.
func requestWithCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	return r
}

func TestLoginRoundTrip(t *testing.T) {
	m := newTestManager(time.Hour)

	w := httptest.NewRecorder()
	m.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil), 42)

	uid, ok := m.UserID(requestWithCookie(t, w))
	if !ok || uid != 42 {
		t.Fatalf("UserID = (%d, %v), want (42, true)", uid, ok)
	}
}

func TestTamperedCookieRejected(t *testing.T) {
	m := newTestManager(time.Hour)

	w := httptest.NewRecorder()
	m.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil), 42)
	c := w.Result().Cookies()[0]

	// Swap the user ID without re-signing.
	parts := strings.SplitN(c.Value, ".", 2)
	c.Value = "1." + parts[1]

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	if _, ok := m.UserID(r); ok {
		t.Fatal("tampered cookie accepted")
	}
}

func TestExpiredCookieRejected(t *testing.T) {
	m := newTestManager(-time.Minute) // already expired when issued

	w := httptest.NewRecorder()
	m.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil), 42)

	if _, ok := m.UserID(requestWithCookie(t, w)); ok {
		t.Fatal("expired cookie accepted")
	}
}

func TestMissingCookie(t *testing.T) {
	m := newTestManager(time.Hour)
	if _, ok := m.UserID(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("missing cookie accepted")
	}
}

func TestLogoutMirrorsLoginAttributes(t *testing.T) {
	m := newTestManager(time.Hour)

	login := httptest.NewRecorder()
	m.Login(login, httptest.NewRequest(http.MethodPost, "/login", nil), 42)
	issued := login.Result().Cookies()[0]

	logout := httptest.NewRecorder()
	m.Logout(logout, httptest.NewRequest(http.MethodPost, "/logout", nil))
	cleared := logout.Result().Cookies()[0]

	// Browsers key cookies on more than the name; a clearing cookie with
	// different attributes may not replace the original.
	if cleared.MaxAge >= 0 {
		t.Fatalf("MaxAge = %d, want negative", cleared.MaxAge)
	}
	if cleared.Path != issued.Path {
		t.Fatalf("Path = %q, want %q", cleared.Path, issued.Path)
	}
	if cleared.HttpOnly != issued.HttpOnly {
		t.Fatalf("HttpOnly = %v, want %v", cleared.HttpOnly, issued.HttpOnly)
	}
	if cleared.Secure != issued.Secure {
		t.Fatalf("Secure = %v, want %v", cleared.Secure, issued.Secure)
	}
	if cleared.SameSite != issued.SameSite {
		t.Fatalf("SameSite = %v, want %v", cleared.SameSite, issued.SameSite)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := newTestManager(time.Hour)
	verifier := NewManager("ffffffffffffffffffffffffffffffff", time.Hour)

	w := httptest.NewRecorder()
	issuer.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil), 7)

	if _, ok := verifier.UserID(requestWithCookie(t, w)); ok {
		t.Fatal("cookie signed with a different secret accepted")
	}
}
