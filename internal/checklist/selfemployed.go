package checklist

import (
	"fmt"
	"math"
	"time"

	"doccheck/internal/checklist/catalog"
)

// structuredEntityTenureYears is the tenure below which structured entities
// get the program-specific return count.
const structuredEntityTenureYears = 5

// IsStructuredEntity reports whether t files its own business return
// (LLC, S-Corp, C-Corp, partnership).
func IsStructuredEntity(t BusinessType) bool {
	switch t {
	case BusinessLLC, BusinessSCorp, BusinessCCorp, BusinessPartnership:
		return true
	default:
		return false
	}
}

// RequiredTaxReturnYears applies the self-employment tax-year policy:
//
//	non-structured entity                 -> overlay default
//	structured, < 5y, Conventional        -> 1
//	structured, < 5y, FHA or VA           -> 2
//	structured, >= 5y or USDA/other       -> overlay default
//
// A negative yearsInBusiness never happens for parsed dates in the past;
// a NaN (unknown tenure) compares false and falls through to the default.
func RequiredTaxReturnYears(program LoanProgram, businessType BusinessType, yearsInBusiness float64, overlays Overlays) int {
	if !IsStructuredEntity(businessType) {
		return overlays.DefaultBusinessReturnsYears
	}
	if yearsInBusiness < structuredEntityTenureYears {
		switch program {
		case ProgramConventional:
			return 1
		case ProgramFHA, ProgramVA:
			return 2
		}
	}
	return overlays.DefaultBusinessReturnsYears
}

// PersonalReturnID is the 1040 document id for the given year count.
func PersonalReturnID(years int) string {
	return fmt.Sprintf("%s_YEARS_%d", catalog.PersonalReturnPrefix, normalizeYears(years))
}

// BusinessReturnID is the business return document id for the entity type
// and year count.
func BusinessReturnID(businessType BusinessType, years int) string {
	form := "SCHEDULEC"
	switch businessType {
	case BusinessLLC, BusinessPartnership:
		form = "1065"
	case BusinessSCorp:
		form = "1120S"
	case BusinessCCorp:
		form = "1120"
	}
	return fmt.Sprintf("%s_%s_YEARS_%d", catalog.BusinessReturnPrefix, form, normalizeYears(years))
}

// normalizeYears maps a year count onto the two catalogued variants.
func normalizeYears(years int) int {
	if years == 1 {
		return 1
	}
	return 2
}

// businessTenure returns years in business at now, or NaN when the start
// date is absent or unparsable.
func businessTenure(se *SelfEmployment, now time.Time) float64 {
	start, ok := parseDate(se.BusinessStartDate)
	if !ok {
		return math.NaN()
	}
	return yearsSince(start, now)
}

// taxReturnDocs is the producer for the tenure rule. The personal return
// reason always reads "<5y"; explanation output is matched on that text.
func taxReturnDocs(env ruleEnv) ComputedDocs {
	return func(app *LoanApplication) []DocSpec {
		se := app.SelfEmployed
		if se == nil {
			return nil
		}
		years := normalizeYears(RequiredTaxReturnYears(app.Program, se.BusinessType, businessTenure(se, env.now), env.overlays))

		entity := string(se.BusinessType)
		if entity == "" {
			entity = "business"
		}
		yearsText := "1 year returns"
		if years == 2 {
			yearsText = "2 years returns"
		}
		return []DocSpec{
			doc(PersonalReturnID(years), fmt.Sprintf("Self-employed %s <5y → %s (%s)", entity, yearsText, programLabel(app.Program))),
			doc(BusinessReturnID(se.BusinessType, years), fmt.Sprintf("Business returns required (%s)", entity)),
		}
	}
}

func programLabel(p LoanProgram) string {
	if p == "" {
		return "program unspecified"
	}
	return string(p)
}
