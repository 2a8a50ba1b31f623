package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type RuleMatchPrometheusMetrics struct {
	ruleMatches    *prometheus.CounterVec
	ruleDowngrades *prometheus.CounterVec
	ruleNoMatch    *prometheus.CounterVec
}

func newRuleMatchPrometheusMetrics(reg prometheus.Registerer) *RuleMatchPrometheusMetrics {
	mtc := &RuleMatchPrometheusMetrics{
		ruleMatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commitment_rule_matches_total",
				Help: "Number of accounting rule matches by operation type",
			},
			[]string{"operation"},
		),
		ruleDowngrades: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commitment_rule_operator_downgrades_total",
				Help: "Number of condition operator downgrades applied during matching",
			},
			[]string{"operation"},
		),
		ruleNoMatch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commitment_rule_no_match_total",
				Help: "Number of operations with no applicable accounting rule",
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(mtc.ruleMatches)
	reg.MustRegister(mtc.ruleDowngrades)
	reg.MustRegister(mtc.ruleNoMatch)

	return mtc
}

func (m *RuleMatchPrometheusMetrics) RecordMatch(operation string) {
	if m == nil {
		return
	}
	m.ruleMatches.WithLabelValues(operation).Inc()
}

func (m *RuleMatchPrometheusMetrics) RecordDowngrade(operation string) {
	if m == nil {
		return
	}
	m.ruleDowngrades.WithLabelValues(operation).Inc()
}

func (m *RuleMatchPrometheusMetrics) RecordNoMatch(operation string) {
	if m == nil {
		return
	}
	m.ruleNoMatch.WithLabelValues(operation).Inc()
}
