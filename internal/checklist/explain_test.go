package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	result := &Result{
		Required: []DocRequest{
			{ID: "A", Reason: "shared", RuleHits: []string{"R-1", "R-2"}},
			{ID: "B", Reason: "shared", RuleHits: []string{"R-1"}},
			{ID: "C", Reason: "own", RuleHits: []string{"R-3"}},
		},
		NiceToHave: []DocRequest{
			{ID: "D", Reason: "optional", RuleHits: []string{"R-4"}, Conditional: true},
		},
	}

	assert.Equal(t, []string{
		"R-1: shared",
		"R-2: shared",
		"R-3: own",
	}, Explain(result))
}

func TestExplain_Empty(t *testing.T) {
	assert.Empty(t, Explain(&Result{}))
	assert.Empty(t, Explain(nil))
}
