package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		raw  []DocRequest
		want []DocRequest
	}{
		{
			name: "empty",
			raw:  nil,
			want: []DocRequest{},
		},
		{
			name: "identical reasons collapse",
			raw: []DocRequest{
				{ID: "A", Label: "a", Reason: "same", RuleHits: []string{"R-1"}},
				{ID: "A", Label: "a", Reason: "same", RuleHits: []string{"R-2"}},
			},
			want: []DocRequest{
				{ID: "A", Label: "a", Reason: "same", RuleHits: []string{"R-1", "R-2"}},
			},
		},
		{
			name: "distinct reasons joined in first-seen order without repeats",
			raw: []DocRequest{
				{ID: "A", Reason: "first", RuleHits: []string{"R-1"}},
				{ID: "A", Reason: "second", RuleHits: []string{"R-2"}},
				{ID: "A", Reason: "first", RuleHits: []string{"R-1"}},
			},
			want: []DocRequest{
				{ID: "A", Reason: "first; second", RuleHits: []string{"R-1", "R-2"}},
			},
		},
		{
			name: "required dominates conditional",
			raw: []DocRequest{
				{ID: "A", Reason: "r", RuleHits: []string{"R-1"}, Conditional: true},
				{ID: "A", Reason: "r", RuleHits: []string{"R-2"}, Conditional: false},
				{ID: "A", Reason: "r", RuleHits: []string{"R-3"}, Conditional: true},
			},
			want: []DocRequest{
				{ID: "A", Reason: "r", RuleHits: []string{"R-1", "R-2", "R-3"}, Conditional: false},
			},
		},
		{
			name: "all conditional stays conditional",
			raw: []DocRequest{
				{ID: "A", Reason: "r", RuleHits: []string{"R-1"}, Conditional: true},
				{ID: "A", Reason: "r", RuleHits: []string{"R-2"}, Conditional: true},
			},
			want: []DocRequest{
				{ID: "A", Reason: "r", RuleHits: []string{"R-1", "R-2"}, Conditional: true},
			},
		},
		{
			name: "label and scope from first contribution",
			raw: []DocRequest{
				{ID: "A", Label: "first", Reason: "r", RuleHits: []string{"R-1"}, ProgramScope: []LoanProgram{ProgramVA}},
				{ID: "A", Label: "second", Reason: "r", RuleHits: []string{"R-2"}, ProgramScope: []LoanProgram{ProgramFHA}},
			},
			want: []DocRequest{
				{ID: "A", Label: "first", Reason: "r", RuleHits: []string{"R-1", "R-2"}, ProgramScope: []LoanProgram{ProgramVA}},
			},
		},
		{
			name: "first-seen id order",
			raw: []DocRequest{
				{ID: "B", Reason: "b", RuleHits: []string{"R-1"}},
				{ID: "A", Reason: "a", RuleHits: []string{"R-1"}},
				{ID: "B", Reason: "b", RuleHits: []string{"R-2"}},
			},
			want: []DocRequest{
				{ID: "B", Reason: "b", RuleHits: []string{"R-1", "R-2"}},
				{ID: "A", Reason: "a", RuleHits: []string{"R-1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.raw))
		})
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	raw := []DocRequest{
		{ID: "A", Reason: "one", RuleHits: []string{"R-1"}},
		{ID: "A", Reason: "two", RuleHits: []string{"R-2"}},
	}
	merged := Merge(raw)
	require.Len(t, merged, 1)

	merged[0].RuleHits[0] = "changed"
	assert.Equal(t, []string{"R-1"}, raw[0].RuleHits)
	assert.Equal(t, "one", raw[0].Reason)
}
