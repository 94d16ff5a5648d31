// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `.env` file at `<root>/conf/.env`.
  2. `conf/global.yaml`.
  3. Environment variables prefixed `ATELIER_`, where `__` maps to “.”
     (e.g., `ATELIER_HTTP__LISTEN_ADDR → http.listen_addr`).

After merging, values carrying the `vault:` prefix are swapped for their
Vault KV-v2 counterparts, the tree is unmarshalled into strongly-typed
structs, validated, enriched with the runtime root path, and cached in an
`atomic.Pointer` for lock-free reads.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read, env overlay.
  • ERROR spans — YAML parse, env overlay, Vault resolution, unmarshal,
    validation failures.
  • INFO  span  — final “config loaded” with key highlights.
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed.

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/global.yaml`;
    this lets `go run ./cmd/admin` work from any sub-directory.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/yanizio/atelier/internal/vault"
)

var current atomic.Pointer[Config]

// defaultSessionTTLHours is applied when session.ttl_hours is omitted.
const defaultSessionTTLHours = 336 // fourteen days

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves ATELIER_ROOT or climbs directories until conf/global.yaml
// is found.  Falls back to executable heuristic for production layout.
func rootDir() string {
	if r := os.Getenv("ATELIER_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves vault: values, validates,
// and caches Config.  The Vault client may be nil when no value carries the
// `vault:` prefix; a prefixed value with a nil client is a hard error.
func Load(ctx context.Context, vc *vault.Client) (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, err
	}
	zap.S().Debugw("config yaml loaded", "file", yamlPath)

	// Env overrides: ATELIER_HTTP__LISTEN_ADDR → http.listen_addr
	if err := k.Load(env.Provider("ATELIER_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	if err := resolveVaultValues(ctx, k, vc); err != nil {
		zap.S().Errorw("config vault resolution failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = defaultSessionTTLHours
	}

	cfg.Paths.Root = root
	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"session_ttl_hours", cfg.Session.TTLHours,
		"geoip", cfg.GeoIP.DBPath != "",
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── vault overlay ───────────────────────────────*/

// resolveVaultValues swaps every `vault:<path>#<key>` string in the merged
// tree for the secret it names.  Resolved values are cached inside the
// Vault client for one hour, so repeated Reload() calls stay cheap.
func resolveVaultValues(ctx context.Context, k *koanf.Koanf, vc *vault.Client) error {
	for key, raw := range k.All() {
		s, ok := raw.(string)
		if !ok || !strings.HasPrefix(s, "vault:") {
			continue
		}
		if vc == nil {
			return fmt.Errorf("config key %q references Vault but no client is configured", key)
		}
		ref := strings.TrimPrefix(s, "vault:")
		path, field, found := strings.Cut(ref, "#")
		if !found {
			return fmt.Errorf("config key %q: vault reference %q lacks a #key suffix", key, s)
		}
		val, err := vc.GetKV(ctx, path, field, time.Hour)
		if err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
		if err := k.Set(key, val); err != nil {
			return err
		}
	}
	return nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config { return current.Load() }
