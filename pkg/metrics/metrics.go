package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, path and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "path", "status"})

	// ScheduleSyncs counts schedule synchronizer outcomes.
	ScheduleSyncs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_schedule_syncs_total",
		Help: "Schedule synchronizer runs by outcome (completed, created, noop, error).",
	}, []string{"outcome"})

	// StockDecrements counts stock ledger operations by policy and outcome.
	StockDecrements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_stock_decrements_total",
		Help: "Stock decrements by policy (strict, floor) and outcome (ok, rejected, clamped).",
	}, []string{"policy", "outcome"})

	// ActasGenerated counts generated acta PDFs by document kind.
	ActasGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_actas_generated_total",
		Help: "Acta PDFs generated and persisted, by kind (maintenance, handover).",
	}, []string{"kind"})
)
