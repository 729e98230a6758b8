package checklist

import "time"

// Category groups rules by the concern they cover.
type Category string

const (
	CategoryIdentity          Category = "identity"
	CategoryEmployment        Category = "employment"
	CategorySelfEmployment    Category = "self_employment"
	CategoryIncomeType        Category = "income_type"
	CategoryFamilySupport     Category = "family_support"
	CategoryAssets            Category = "assets"
	CategoryGovernmentProgram Category = "government_program"
	CategoryProperty          Category = "property"
	CategoryCreditHistory     Category = "credit_history"
	CategoryOccupancy         Category = "occupancy"
)

// Predicate decides whether a rule applies. Predicates are pure and total.
type Predicate func(app *LoanApplication) bool

// DocSpec is a document a rule asks for, before provenance is attached.
type DocSpec struct {
	ID     string
	Reason string
}

// SourceKind distinguishes fixed document lists from computed ones.
type SourceKind string

const (
	SourceStatic   SourceKind = "static"
	SourceComputed SourceKind = "computed"
)

// DocSource produces the documents of a rule whose predicate held.
// It is implemented only by StaticDocs and ComputedDocs.
type DocSource interface {
	Kind() SourceKind
	specs(app *LoanApplication) []DocSpec
}

// StaticDocs is a fixed document list.
type StaticDocs []DocSpec

func (StaticDocs) Kind() SourceKind { return SourceStatic }

func (d StaticDocs) specs(*LoanApplication) []DocSpec { return d }

// ComputedDocs derives the document list from the application.
type ComputedDocs func(app *LoanApplication) []DocSpec

func (ComputedDocs) Kind() SourceKind { return SourceComputed }

func (f ComputedDocs) specs(app *LoanApplication) []DocSpec { return f(app) }

// Rule is the atomic unit of document policy.
type Rule struct {
	ID          string
	Title       string
	Category    Category
	Conditional bool
	// ProgramScope is stamped on every document the rule produces.
	ProgramScope []LoanProgram
	When         Predicate
	Docs         DocSource
}

// RuleInfo is the static description of a rule.
type RuleInfo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	Conditional bool       `json:"conditional"`
	Source      SourceKind `json:"source"`
}

// ruleEnv is everything a rule table closes over besides the application.
type ruleEnv struct {
	overlays Overlays
	now      time.Time
}

// Rules describes the rule table in declaration order.
func Rules() []RuleInfo {
	table := ruleTable(ruleEnv{overlays: DefaultOverlays()})
	infos := make([]RuleInfo, len(table))
	for i, r := range table {
		infos[i] = RuleInfo{
			ID:          r.ID,
			Title:       r.Title,
			Category:    r.Category,
			Conditional: r.Conditional,
			Source:      r.Docs.Kind(),
		}
	}
	return infos
}

func docs(specs ...DocSpec) StaticDocs {
	return StaticDocs(specs)
}

func doc(id, reason string) DocSpec {
	return DocSpec{ID: id, Reason: reason}
}
