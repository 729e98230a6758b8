package checklist

import (
	"fmt"

	dErrors "doccheck/pkg/domain-errors"
)

// LabelCatalog resolves document ids to display labels.
type LabelCatalog interface {
	Label(id string) string
}

// evaluate runs every rule in declaration order and returns the raw,
// unmerged document list. A failing rule aborts the whole evaluation.
func evaluate(rules []Rule, app *LoanApplication, labels LabelCatalog) ([]DocRequest, error) {
	var raw []DocRequest
	for _, rule := range rules {
		docs, err := evaluateRule(rule, app, labels)
		if err != nil {
			return nil, err
		}
		raw = append(raw, docs...)
	}
	return raw, nil
}

// evaluateRule converts a panic in the predicate or producer into a coded error.
func evaluateRule(rule Rule, app *LoanApplication, labels LabelCatalog) (docs []DocRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			docs = nil
			err = dErrors.New(dErrors.CodeInternal, fmt.Sprintf("rule %s failed: %v", rule.ID, r))
		}
	}()

	if rule.When == nil || rule.Docs == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("rule %s is incomplete", rule.ID))
	}
	if !rule.When(app) {
		return nil, nil
	}

	specs := rule.Docs.specs(app)
	docs = make([]DocRequest, 0, len(specs))
	for _, spec := range specs {
		docs = append(docs, DocRequest{
			ID:           spec.ID,
			Label:        labels.Label(spec.ID),
			Reason:       spec.Reason,
			RuleHits:     []string{rule.ID},
			Conditional:  rule.Conditional,
			ProgramScope: rule.ProgramScope,
		})
	}
	return docs, nil
}
