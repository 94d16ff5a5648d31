// internal/config/validator_test.go
//
// Validation rules guard startup; these tests pin the ones that matter
// operationally: the listen address shape, the required admin DSN, and
// the 32-byte floor on the session secret.
//
// Run: go test ./internal/config -v

package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		HTTP:     HTTP{ListenAddr: "0.0.0.0:8443"},
		Database: Database{AdminDSN: "admin:pw@tcp(127.0.0.1:3306)/atelier_admin?parseTime=true"},
		Session:  Session{Secret: strings.Repeat("s", 32), TTLHours: 336},
	}
}

func TestValidateOK(t *testing.T) {
	if err := validateStruct(validConfig()); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateListenAddr(t *testing.T) {
	for _, addr := range []string{"", "8443", "no-port-here"} {
		c := validConfig()
		c.HTTP.ListenAddr = addr
		if err := validateStruct(c); err == nil {
			t.Errorf("listen_addr %q accepted, want error", addr)
		}
	}
}

func TestValidateAdminDSNRequired(t *testing.T) {
	c := validConfig()
	c.Database.AdminDSN = ""
	if err := validateStruct(c); err == nil {
		t.Fatal("empty admin_dsn accepted, want error")
	}
}

func TestValidateSessionSecretLength(t *testing.T) {
	c := validConfig()
	c.Session.Secret = strings.Repeat("s", 31)
	if err := validateStruct(c); err == nil {
		t.Fatal("31-byte session secret accepted, want error")
	}
}
