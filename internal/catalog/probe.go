// internal/catalog/probe.go
//
// Tenant connectivity probe.
//
// The route layer probes a DSN before persisting it (shop create, or a
// patch that changes the DSN) and exposes the same check on
// POST /test-connection.  A probe never returns an error; every failure
// mode collapses to false.  Concurrent probes of the same DSN are
// deduplicated with singleflight so a slow tenant cannot stack dials.
package catalog

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yanizio/atelier/internal/database"
	"github.com/yanizio/atelier/internal/metrics"
)

var probeGroup singleflight.Group

const probeTimeout = 5 * time.Second

// probeContext detaches ctx from its caller's cancellation and bounds the
// dial with probeTimeout instead.  A collapsed singleflight probe runs on
// the first caller's context; without the detach, that caller hanging up
// would hand every waiter a spurious false.
func probeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), probeTimeout)
}

// Probe reports whether the database behind dsn answers a liveness check.
func Probe(ctx context.Context, dsn string) bool {
	metrics.TenantProbeTotal.Inc()

	v, _, _ := probeGroup.Do(dsn, func() (any, error) {
		ctx, cancel := probeContext(ctx)
		defer cancel()

		db, err := database.OpenOnce(ctx, dsn)
		if err != nil {
			return false, nil
		}
		defer db.Close()

		var one int
		if err := db.GetContext(ctx, &one, "SELECT 1"); err != nil {
			return false, nil
		}
		return true, nil
	})

	ok, _ := v.(bool)
	if !ok {
		metrics.TenantProbeFailuresTotal.Inc()
	}
	return ok
}
