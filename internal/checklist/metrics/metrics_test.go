package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.IncrementEvaluation("FHA", "ok")
	m.IncrementEvaluation("FHA", "ok")
	m.IncrementRuleHits([]string{"R-G-01", "R-FHA-01"})
	m.IncrementClarifications()
	m.ObserveDocuments(7, 1)
	m.ObserveEvaluateLatency(time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Evaluations.WithLabelValues("FHA", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RuleHits.WithLabelValues("R-FHA-01")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Clarifications), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementEvaluation("VA", "failed")
		m.IncrementRuleHits([]string{"R-VA-01"})
		m.IncrementClarifications()
		m.ObserveDocuments(1, 0)
		m.ObserveEvaluateLatency(time.Second)
	})
}
