// cmd/admin/main.go
//
// Atelier – admin-panel HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Build the Vault client when VAULT_ADDR is set, then load config
//     (YAML + env overlays, `vault:` values resolved).
//
//  4. Open the shared admin DB and log operator/shop counts as an early
//     sanity check.  This pool lives for the whole process and is closed
//     on shutdown; tenant databases are opened per call by the catalog
//     layer instead.
//
//  5. Optional GeoIP resolver for access-log enrichment.
//
//  6. Build the route layer over the SQL store and serve until SIGINT or
//     SIGTERM, then drain.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yanizio/atelier/internal/api"
	"github.com/yanizio/atelier/internal/config"
	"github.com/yanizio/atelier/internal/database"
	"github.com/yanizio/atelier/internal/geo"
	"github.com/yanizio/atelier/internal/logger"
	_ "github.com/yanizio/atelier/internal/metrics" // register collectors
	"github.com/yanizio/atelier/internal/server"
	"github.com/yanizio/atelier/internal/session"
	"github.com/yanizio/atelier/internal/vault"
)

const serverEnvPath = "/usr/local/etc/atelier/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Config (Vault-aware) ────────────────────────────────────────
	//
	var vc *vault.Client
	if os.Getenv("VAULT_ADDR") != "" {
		vc, err = vault.New(ctx, logOut.Infof)
		if err != nil {
			logOut.Fatalf("vault client: %v", err)
		}
	}

	cfg, err := config.Load(ctx, vc)
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Admin DB connect ────────────────────────────────────────────
	//
	logOut.Infow("connecting to admin DB")
	adminDB, err := database.Open(cfg.Database.AdminDSN)
	if err != nil {
		logOut.Fatalf("connect admin DB: %v", err)
	}
	defer adminDB.Close()

	// Early sanity check: count operators and shops.
	var operators, shops int
	_ = adminDB.Get(&operators, `SELECT COUNT(*) FROM users`)
	_ = adminDB.Get(&shops, `SELECT COUNT(*) FROM shops`)
	logOut.Infow("admin DB online", "operators", operators, "shops", shops)

	//
	// ── 3.  Optional GeoIP resolver ─────────────────────────────────────
	//
	var resolver *geo.Resolver
	if cfg.GeoIP.DBPath != "" {
		resolver, err = geo.Open(cfg.GeoIP.DBPath)
		if err != nil {
			logOut.Fatalf("open geoip db: %v", err)
		}
		defer resolver.Close()
	}

	//
	// ── 4.  Route layer and server ──────────────────────────────────────
	//
	sessions := session.NewManager(cfg.Session.Secret,
		time.Duration(cfg.Session.TTLHours)*time.Hour)
	handler := api.NewHandler(api.NewSQLStore(adminDB), sessions)

	srv := server.New(cfg.HTTP.ListenAddr, handler.Router(resolver))
	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
	if err := server.Run(ctx, srv); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	logOut.Infow("shutdown complete")
}
