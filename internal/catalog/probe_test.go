// internal/catalog/probe_test.go
//
// The probe's context handling matters under singleflight: every collapsed
// caller rides the first caller's context, so a cancelled first request
// must not poison the shared dial.
//
// Run: go test ./internal/catalog -v

package catalog

import (
	"context"
	"testing"
	"time"
)

func TestProbeContextSurvivesCallerCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	cancel() // the first caller hangs up immediately

	ctx, cleanup := probeContext(parent)
	defer cleanup()

	select {
	case <-ctx.Done():
		t.Fatalf("probe context died with its caller: %v", ctx.Err())
	default:
	}
}

func TestProbeContextHasDeadline(t *testing.T) {
	ctx, cleanup := probeContext(context.Background())
	defer cleanup()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("probe context carries no deadline")
	}
	if remaining := time.Until(deadline); remaining > probeTimeout {
		t.Fatalf("deadline %v out, want at most %v", remaining, probeTimeout)
	}
}

func TestProbeUnparseableDSN(t *testing.T) {
	if Probe(context.Background(), "not a dsn") {
		t.Fatal("probe of a malformed DSN reported reachable")
	}
}
