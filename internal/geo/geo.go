// internal/geo/geo.go
//
// Optional GeoIP lookups for the access log.
//
// Context
// -------
// When `geoip.db_path` points at a MaxMind country database, the access-log
// middleware annotates each request with the caller's ISO country code.
// When the path is empty (the default) the Resolver is nil and every lookup
// short-circuits to "".  The admin panel works identically either way; this
// is log enrichment only.
package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

// Resolver wraps a geoip2 reader.  A nil *Resolver is valid and resolves
// everything to the empty string.
type Resolver struct {
	r *geoip2.Reader
}

// Open reads the MaxMind database at path.  Callers should Close() the
// resolver at shutdown.
func Open(path string) (*Resolver, error) {
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &Resolver{r: r}, nil
}

// Country returns the ISO 3166-1 code for ip, or "" when the resolver is
// disabled, the address is unparseable, or the database has no record.
func (g *Resolver) Country(ip string) string {
	if g == nil || g.r == nil {
		return ""
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}
	rec, err := g.r.Country(parsed)
	if err != nil || rec == nil {
		return ""
	}
	return rec.Country.IsoCode
}

// Close releases the underlying reader.  Safe on a nil resolver.
func (g *Resolver) Close() error {
	if g == nil || g.r == nil {
		return nil
	}
	return g.r.Close()
}
