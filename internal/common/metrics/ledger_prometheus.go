package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type LedgerPrometheusMetrics struct {
	ledgerOperations *prometheus.CounterVec
	ledgerMovements  *prometheus.CounterVec
	ledgerRejections *prometheus.CounterVec
}

func newLedgerPrometheusMetrics(reg prometheus.Registerer) *LedgerPrometheusMetrics {
	mtc := &LedgerPrometheusMetrics{
		ledgerOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commitment_ledger_operations_total",
				Help: "Number of budget line ledger operations by type",
			},
			[]string{"operation"},
		),
		ledgerMovements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commitment_ledger_movements_total",
				Help: "Total amount moved per ledger operation type",
			},
			[]string{"operation"},
		),
		ledgerRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commitment_ledger_rejections_total",
				Help: "Number of ledger operations rejected by reason",
			},
			[]string{"operation", "reason"},
		),
	}

	reg.MustRegister(mtc.ledgerOperations)
	reg.MustRegister(mtc.ledgerMovements)
	reg.MustRegister(mtc.ledgerRejections)

	return mtc
}

func (m *LedgerPrometheusMetrics) Record(operation string, amount decimal.Decimal) {
	if m == nil {
		return
	}

	value, _ := amount.Float64()
	m.ledgerOperations.WithLabelValues(operation).Inc()
	m.ledgerMovements.WithLabelValues(operation).Add(value)
}

func (m *LedgerPrometheusMetrics) RecordRejection(operation, reason string) {
	if m == nil {
		return
	}

	m.ledgerRejections.WithLabelValues(operation, reason).Inc()
}
