package metrics

import (
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	PrometheusRegisterer() prometheus.Registerer
	GetLedgerPrometheus() *LedgerPrometheusMetrics
	GetRuleMatchPrometheus() *RuleMatchPrometheusMetrics
}

type metrics struct {
	reg              prometheus.Registerer
	ledgerMetrics    *LedgerPrometheusMetrics
	ruleMatchMetrics *RuleMatchPrometheusMetrics
}

func New() Metrics {
	reg := prometheus.DefaultRegisterer
	return &metrics{
		reg:              reg,
		ledgerMetrics:    newLedgerPrometheusMetrics(reg),
		ruleMatchMetrics: newRuleMatchPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, fmt.Sprintf("%s_%s", dbName, role)))
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetLedgerPrometheus() *LedgerPrometheusMetrics {
	return m.ledgerMetrics
}

func (m *metrics) GetRuleMatchPrometheus() *RuleMatchPrometheusMetrics {
	return m.ruleMatchMetrics
}
