// internal/catalog/conn.go
//
// Per-call tenant connections.
//
// Context
// -------
// Every catalog operation resolves a shop's DSN, opens a fresh connection
// to that tenant database, runs exactly one logical operation, and closes
// the connection before returning, including on error.  There is no pool
// and no reuse across requests; the admin panel's traffic is a handful of
// operators, and the open/close cost is dwarfed by operator think time.
// A pool-per-DSN with idle eviction would drop the latency without
// changing observable behaviour; see DESIGN.md before reaching for it.
package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/yanizio/atelier/internal/database"
	"github.com/yanizio/atelier/internal/metrics"
)

// withTenant opens a throwaway connection to dsn, runs fn, and guarantees
// the connection is released.  Any failure increments the tenant-query
// failure counter so unreachable tenants show up on /metrics.
func withTenant(ctx context.Context, dsn string, fn func(*sqlx.DB) error) error {
	db, err := database.OpenOnce(ctx, dsn)
	if err != nil {
		metrics.TenantQueryFailuresTotal.Inc()
		return fmt.Errorf("tenant connect: %w", err)
	}
	defer db.Close()

	if err := fn(db); err != nil {
		metrics.TenantQueryFailuresTotal.Inc()
		return err
	}
	return nil
}
