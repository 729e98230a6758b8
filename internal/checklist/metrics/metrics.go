package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for checklist evaluation.
type Metrics struct {
	// Evaluations by program and outcome ("ok", "invalid", "failed")
	Evaluations *prometheus.CounterVec

	// Documents emitted by list ("required", "nice_to_have")
	Documents *prometheus.HistogramVec

	// Evaluations that produced at least one clarification
	Clarifications prometheus.Counter

	// Rule hits by rule id
	RuleHits *prometheus.CounterVec

	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the checklist metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doccheck_checklist_evaluations_total",
			Help: "Total checklist evaluations by program and outcome",
		}, []string{"program", "outcome"}),

		Documents: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "doccheck_checklist_documents",
			Help:    "Number of documents per evaluated checklist",
			Buckets: []float64{1, 2, 5, 10, 15, 20, 30, 50},
		}, []string{"list"}),

		Clarifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "doccheck_checklist_clarifications_total",
			Help: "Total evaluations that returned clarifications",
		}),

		RuleHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "doccheck_checklist_rule_hits_total",
			Help: "Total times each rule contributed a document",
		}, []string{"rule_id"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "doccheck_checklist_evaluate_duration_seconds",
			Help:    "Duration of checklist evaluation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementEvaluation records an evaluation outcome.
func (m *Metrics) IncrementEvaluation(program, outcome string) {
	if m != nil {
		m.Evaluations.WithLabelValues(program, outcome).Inc()
	}
}

// ObserveDocuments records list sizes of a completed checklist.
func (m *Metrics) ObserveDocuments(required, niceToHave int) {
	if m != nil {
		m.Documents.WithLabelValues("required").Observe(float64(required))
		m.Documents.WithLabelValues("nice_to_have").Observe(float64(niceToHave))
	}
}

func (m *Metrics) IncrementClarifications() {
	if m != nil {
		m.Clarifications.Inc()
	}
}

// IncrementRuleHits counts each rule id once.
func (m *Metrics) IncrementRuleHits(ruleIDs []string) {
	if m != nil {
		for _, id := range ruleIDs {
			m.RuleHits.WithLabelValues(id).Inc()
		}
	}
}

// ObserveEvaluateLatency records the evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
