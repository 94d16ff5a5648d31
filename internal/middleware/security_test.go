// internal/middleware/security_test.go
//
// The security headers must reach the wire even though every JSON handler
// calls WriteHeader itself; once that happens the header map is frozen, so
// the middleware has to write before delegating.
//
// Run: go test ./internal/middleware -v

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityHeadersSurviveWriteHeader(t *testing.T) {
	h := Security(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options":    "nosniff",
		"X-Frame-Options":           "DENY",
		"Strict-Transport-Security": "max-age=63072000; includeSubDomains; preload",
		"Referrer-Policy":           "strict-origin-when-cross-origin",
	} {
		if got := w.Result().Header.Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if w.Result().Header.Get("Content-Security-Policy") == "" {
		t.Error("Content-Security-Policy missing")
	}
	if w.Result().Header.Get("Permissions-Policy") == "" {
		t.Error("Permissions-Policy missing")
	}
}

func TestSecurityNeverOverwrites(t *testing.T) {
	// An outer layer (e.g., a proxy shim) may have set a header already.
	outer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		Security(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(w, r)
	})

	w := httptest.NewRecorder()
	outer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Result().Header.Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Fatalf("X-Frame-Options = %q, want the pre-set SAMEORIGIN", got)
	}
}
