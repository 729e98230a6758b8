package checklist

import (
	"time"

	"doccheck/internal/checklist/catalog"
	dErrors "doccheck/pkg/domain-errors"
)

// Engine computes document checklists. It holds only read-only
// configuration and is safe for concurrent use.
type Engine struct {
	labels   LabelCatalog
	overlays Overlays
}

type EngineOption func(*Engine)

// WithCatalog overrides the label catalog.
func WithCatalog(labels LabelCatalog) EngineOption {
	return func(e *Engine) {
		e.labels = labels
	}
}

// WithOverlays sets the base overlays that per-call patches are applied over.
func WithOverlays(o Overlays) EngineOption {
	return func(e *Engine) {
		e.overlays = o
	}
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		labels:   catalog.Default(),
		overlays: DefaultOverlays(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Overlays returns the engine's base overlays.
func (e *Engine) Overlays() Overlays {
	return e.overlays
}

// Generate evaluates app as of now with patch applied over the base overlays.
//
// Errors: CodeInvariantViolation for a nil application, CodeValidation for
// overlays outside their allowed range, CodeInternal when a rule fails.
// No partial result is returned on error.
func (e *Engine) Generate(app *LoanApplication, patch *OverlayPatch, now time.Time) (*Result, error) {
	if app == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "loan application is required")
	}
	overlays := e.overlays.Apply(patch)
	if err := overlays.Validate(); err != nil {
		return nil, err
	}

	raw, err := evaluate(ruleTable(ruleEnv{overlays: overlays, now: now}), app, e.labels)
	if err != nil {
		return nil, err
	}
	required, niceToHave := Classify(Merge(raw))
	return &Result{
		Required:       required,
		NiceToHave:     niceToHave,
		Clarifications: Clarify(app),
	}, nil
}

// Explain generates the checklist and renders its explanation lines.
func (e *Engine) Explain(app *LoanApplication, patch *OverlayPatch, now time.Time) ([]string, error) {
	result, err := e.Generate(app, patch, now)
	if err != nil {
		return nil, err
	}
	return Explain(result), nil
}

// RuleHits returns the distinct rule ids that contributed to result, in
// required then nice-to-have order.
func RuleHits(result *Result) []string {
	seen := make(map[string]struct{})
	var hits []string
	for _, group := range [][]DocRequest{result.Required, result.NiceToHave} {
		for _, d := range group {
			for _, h := range d.RuleHits {
				if _, ok := seen[h]; ok {
					continue
				}
				seen[h] = struct{}{}
				hits = append(hits, h)
			}
		}
	}
	return hits
}
