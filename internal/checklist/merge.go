package checklist

import (
	pstrings "doccheck/pkg/platform/strings"
)

const reasonSeparator = "; "

// mergeEntry accumulates every contribution for one document id.
type mergeEntry struct {
	first       DocRequest
	hits        []string
	reasons     []string
	conditional bool
}

// docSet is an insertion-ordered map keyed by document id.
type docSet struct {
	order []string
	byID  map[string]*mergeEntry
}

func newDocSet(capacity int) *docSet {
	return &docSet{
		order: make([]string, 0, capacity),
		byID:  make(map[string]*mergeEntry, capacity),
	}
}

func (s *docSet) add(d DocRequest) {
	entry, ok := s.byID[d.ID]
	if !ok {
		s.order = append(s.order, d.ID)
		s.byID[d.ID] = &mergeEntry{
			first:       d,
			hits:        append([]string(nil), d.RuleHits...),
			reasons:     []string{d.Reason},
			conditional: d.Conditional,
		}
		return
	}
	entry.hits = append(entry.hits, d.RuleHits...)
	entry.reasons = append(entry.reasons, d.Reason)
	// required dominates
	entry.conditional = entry.conditional && d.Conditional
}

func (s *docSet) docs() []DocRequest {
	out := make([]DocRequest, 0, len(s.order))
	for _, id := range s.order {
		e := s.byID[id]
		merged := e.first
		merged.RuleHits = pstrings.Dedupe(e.hits)
		merged.Reason = pstrings.JoinDistinct(e.reasons, reasonSeparator)
		merged.Conditional = e.conditional
		if len(e.first.ProgramScope) > 0 {
			merged.ProgramScope = append([]LoanProgram(nil), e.first.ProgramScope...)
		}
		out = append(out, merged)
	}
	return out
}

// Merge collapses raw document requests by id, in first-seen order.
// Rule hits are unioned, the conditional flag is the AND of all
// contributions, and distinct reasons are joined with "; ". Label and
// program scope come from the first contribution.
func Merge(raw []DocRequest) []DocRequest {
	set := newDocSet(len(raw))
	for _, d := range raw {
		set.add(d)
	}
	return set.docs()
}
