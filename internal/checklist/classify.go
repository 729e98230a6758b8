package checklist

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"doccheck/internal/checklist/catalog"
)

// priorityIDs sort ahead of every other required document, in this order.
var priorityIDs = []string{
	catalog.GovtID,
	catalog.SSNVerification,
	catalog.GreenCardEAD,
	catalog.NameChangeDocs,
}

func priorityRank(id string) int {
	for i, p := range priorityIDs {
		if p == id {
			return i
		}
	}
	return -1
}

// Classify partitions merged documents into required and nice-to-have.
// Required documents are ordered by priority id, then by label; nice-to-have
// documents keep merge order.
func Classify(merged []DocRequest) (required, niceToHave []DocRequest) {
	required = make([]DocRequest, 0, len(merged))
	niceToHave = make([]DocRequest, 0)
	for _, d := range merged {
		if d.Conditional {
			niceToHave = append(niceToHave, d)
			continue
		}
		required = append(required, d)
	}
	sortRequired(required)
	return required, niceToHave
}

func sortRequired(docs []DocRequest) {
	// collate.Collator is not safe for concurrent use.
	col := collate.New(language.English)
	sort.SliceStable(docs, func(i, j int) bool {
		ri, rj := priorityRank(docs[i].ID), priorityRank(docs[j].ID)
		switch {
		case ri >= 0 && rj >= 0:
			return ri < rj
		case ri >= 0:
			return true
		case rj >= 0:
			return false
		}
		return col.CompareString(docs[i].Label, docs[j].Label) < 0
	})
}
