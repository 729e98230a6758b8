package checklist

import pstrings "doccheck/pkg/platform/strings"

// Explain renders one "<ruleId>: <reason>" line per rule hit of every
// required document. Nice-to-have documents are not explained.
func Explain(result *Result) []string {
	if result == nil {
		return []string{}
	}
	lines := make([]string, 0, len(result.Required))
	for _, d := range result.Required {
		for _, ruleID := range d.RuleHits {
			lines = append(lines, ruleID+": "+d.Reason)
		}
	}
	return pstrings.Dedupe(lines)
}
