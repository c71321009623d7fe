package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records order placement outcomes.
type OrderMetrics struct {
	placed        prometheus.Counter
	failed        *prometheus.CounterVec
	compensations *prometheus.CounterVec
}

// NewOrderMetrics registers the order placement metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders placed successfully.",
	})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Order placements that failed, by reason.",
	}, []string{"reason"})
	compensations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_compensations_total",
		Help: "Stock compensations attempted after a failed order insert, by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(placed, failed, compensations)
	return &OrderMetrics{
		placed:        placed,
		failed:        failed,
		compensations: compensations,
	}
}

// IncPlaced increments the successful placement counter.
func (o *OrderMetrics) IncPlaced() {
	if o == nil || o.placed == nil {
		return
	}
	o.placed.Inc()
}

// IncFailed increments the failed placement counter for the given reason.
func (o *OrderMetrics) IncFailed(reason string) {
	if o == nil || o.failed == nil {
		return
	}
	o.failed.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncCompensation increments the compensation counter for the given outcome.
func (o *OrderMetrics) IncCompensation(outcome string) {
	if o == nil || o.compensations == nil {
		return
	}
	o.compensations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
