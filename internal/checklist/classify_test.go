package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doccheck/internal/checklist/catalog"
)

func TestClassify(t *testing.T) {
	merged := []DocRequest{
		{ID: "Z_OPT", Label: "Zebra", Conditional: true},
		{ID: "HOI", Label: "homeowner's insurance"},
		{ID: catalog.NameChangeDocs, Label: "zzz name change"},
		{ID: "BANK", Label: "Bank Statements"},
		{ID: "A_OPT", Label: "Aardvark", Conditional: true},
		{ID: catalog.GovtID, Label: "Government ID"},
		{ID: "APP", Label: "appraisal"},
		{ID: catalog.GreenCardEAD, Label: "Green card"},
	}

	required, niceToHave := Classify(merged)

	assert.Equal(t, []string{
		catalog.GovtID,
		catalog.GreenCardEAD,
		catalog.NameChangeDocs,
		"APP",
		"BANK",
		"HOI",
	}, IDs(required))
	// nice-to-have keeps merge order
	assert.Equal(t, []string{"Z_OPT", "A_OPT"}, IDs(niceToHave))
}

func TestClassify_StableForEqualLabels(t *testing.T) {
	merged := []DocRequest{
		{ID: "SECOND", Label: "Same"},
		{ID: "FIRST", Label: "Same"},
	}
	required, _ := Classify(merged)
	assert.Equal(t, []string{"SECOND", "FIRST"}, IDs(required))
}

func TestClassify_EmptyListsAreNotNil(t *testing.T) {
	required, niceToHave := Classify(nil)
	assert.NotNil(t, required)
	assert.NotNil(t, niceToHave)
	assert.Empty(t, required)
	assert.Empty(t, niceToHave)
}
