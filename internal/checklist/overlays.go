package checklist

import (
	"fmt"

	dErrors "doccheck/pkg/domain-errors"
)

// StudentLoanImputeRule selects how student loan payments are imputed.
type StudentLoanImputeRule string

const (
	ImputeProgramDefault StudentLoanImputeRule = "programDefault"
	ImputeOnePercent     StudentLoanImputeRule = "1pct"
	ImputeHalfPercent    StudentLoanImputeRule = "0.5pct"
)

// Overlays are lender policy knobs layered over agency guidelines.
//
// StudentLoanImputeRule and AlwaysRequire2YearsSelfEmployed are accepted and
// validated but no rule reads them yet.
type Overlays struct {
	DefaultBusinessReturnsYears     int                   `json:"default_business_returns_years" yaml:"defaultBusinessReturnsYears"`
	MinBankStmtMonths               int                   `json:"min_bank_stmt_months" yaml:"minBankStmtMonths"`
	StudentLoanImputeRule           StudentLoanImputeRule `json:"student_loan_impute_rule" yaml:"studentLoanImputeRule"`
	AlwaysRequire2YearsSelfEmployed bool                  `json:"always_require_2_years_self_employed" yaml:"alwaysRequire2YearsSelfEmployed"`
	RequireCondoDocs                bool                  `json:"require_condo_docs" yaml:"requireCondoDocs"`
}

// DefaultOverlays returns the documented defaults.
func DefaultOverlays() Overlays {
	return Overlays{
		DefaultBusinessReturnsYears:     2,
		MinBankStmtMonths:               2,
		StudentLoanImputeRule:           ImputeProgramDefault,
		AlwaysRequire2YearsSelfEmployed: false,
		RequireCondoDocs:                true,
	}
}

// OverlayPatch is a caller-supplied partial Overlays. Nil fields keep the
// value they are applied over.
type OverlayPatch struct {
	DefaultBusinessReturnsYears     *int                   `json:"default_business_returns_years,omitempty" yaml:"defaultBusinessReturnsYears"`
	MinBankStmtMonths               *int                   `json:"min_bank_stmt_months,omitempty" yaml:"minBankStmtMonths"`
	StudentLoanImputeRule           *StudentLoanImputeRule `json:"student_loan_impute_rule,omitempty" yaml:"studentLoanImputeRule"`
	AlwaysRequire2YearsSelfEmployed *bool                  `json:"always_require_2_years_self_employed,omitempty" yaml:"alwaysRequire2YearsSelfEmployed"`
	RequireCondoDocs                *bool                  `json:"require_condo_docs,omitempty" yaml:"requireCondoDocs"`
}

// Apply shallow-merges p over o. A nil patch returns o unchanged.
func (o Overlays) Apply(p *OverlayPatch) Overlays {
	if p == nil {
		return o
	}
	if p.DefaultBusinessReturnsYears != nil {
		o.DefaultBusinessReturnsYears = *p.DefaultBusinessReturnsYears
	}
	if p.MinBankStmtMonths != nil {
		o.MinBankStmtMonths = *p.MinBankStmtMonths
	}
	if p.StudentLoanImputeRule != nil {
		o.StudentLoanImputeRule = *p.StudentLoanImputeRule
	}
	if p.AlwaysRequire2YearsSelfEmployed != nil {
		o.AlwaysRequire2YearsSelfEmployed = *p.AlwaysRequire2YearsSelfEmployed
	}
	if p.RequireCondoDocs != nil {
		o.RequireCondoDocs = *p.RequireCondoDocs
	}
	return o
}

// Validate rejects overlay values the rule table cannot honor.
// Tax return documents exist only for one and two years.
func (o Overlays) Validate() error {
	if o.DefaultBusinessReturnsYears != 1 && o.DefaultBusinessReturnsYears != 2 {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("default_business_returns_years must be 1 or 2, got %d", o.DefaultBusinessReturnsYears))
	}
	if o.MinBankStmtMonths < 1 {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("min_bank_stmt_months must be at least 1, got %d", o.MinBankStmtMonths))
	}
	switch o.StudentLoanImputeRule {
	case ImputeProgramDefault, ImputeOnePercent, ImputeHalfPercent:
	default:
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("student_loan_impute_rule has unsupported value %q", o.StudentLoanImputeRule))
	}
	return nil
}
