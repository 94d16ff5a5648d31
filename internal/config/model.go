// internal/config/model.go
//
// Typed configuration model for Atelier.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                      – dotenv values,
//   • `conf/global.yaml`                        – primary static file,
//   • `ATELIER_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client *before* unmarshalling, so the model never
// stores Vault URIs—only plain strings.  This keeps the admin DSN
// password and the session secret out of flat files and git history.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Database section
//

// Database holds the DSN of the shared admin database.  Tenant DSNs are
// *not* configured here; they live in the `shops` table and are resolved
// per request by the catalog layer.
type Database struct {
	AdminDSN string `koanf:"admin_dsn" validate:"required"`
}

//
// Session section
//

// Session controls the signed login cookie.  The secret should come from
// Vault in production (`vault:secret/atelier#session_secret`); TTLHours
// defaults to 336 (fourteen days) when omitted.
type Session struct {
	Secret   string `koanf:"secret" validate:"required,min=32"`
	TTLHours int    `koanf:"ttl_hours" validate:"min=0"`
}

//
// GeoIP section
//

// GeoIP points at an optional MaxMind database used by the access-log
// middleware to annotate requests with a country code.  An empty path
// disables the lookup entirely.
type GeoIP struct {
	DBPath string `koanf:"db_path"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or ATELIER_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // ATELIER_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Session  Session  `koanf:"session"`
	GeoIP    GeoIP    `koanf:"geoip"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
