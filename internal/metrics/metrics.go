// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TenantProbeTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_probe_total",
			Help: "Cumulative number of tenant connectivity probes issued.",
		})

	TenantProbeFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_probe_failures_total",
			Help: "Cumulative number of tenant connectivity probes that failed.",
		})

	TenantQueryFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_query_failures_total",
			Help: "Cumulative number of failed operations against tenant databases.",
		})

	StatsShopsSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_shops_skipped_total",
			Help: "Shops omitted from the stats aggregate because their tenant database was unreachable.",
		})
)

func init() {
	prometheus.MustRegister(
		TenantProbeTotal,
		TenantProbeFailuresTotal,
		TenantQueryFailuresTotal,
		StatsShopsSkippedTotal,
	)
}
