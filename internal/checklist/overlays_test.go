package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "doccheck/pkg/domain-errors"
)

func ptr[T any](v T) *T { return &v }

func TestOverlays_Apply(t *testing.T) {
	base := DefaultOverlays()

	assert.Equal(t, base, base.Apply(nil))
	assert.Equal(t, base, base.Apply(&OverlayPatch{}))

	got := base.Apply(&OverlayPatch{
		DefaultBusinessReturnsYears: ptr(1),
		RequireCondoDocs:            ptr(false),
	})
	assert.Equal(t, 1, got.DefaultBusinessReturnsYears)
	assert.False(t, got.RequireCondoDocs)
	assert.Equal(t, base.MinBankStmtMonths, got.MinBankStmtMonths)
	assert.Equal(t, base.StudentLoanImputeRule, got.StudentLoanImputeRule)
	// receiver is a value; base is untouched
	assert.True(t, base.RequireCondoDocs)
}

func TestOverlays_Validate(t *testing.T) {
	tests := []struct {
		name    string
		patch   *OverlayPatch
		wantErr bool
	}{
		{"defaults", nil, false},
		{"one year", &OverlayPatch{DefaultBusinessReturnsYears: ptr(1)}, false},
		{"three years", &OverlayPatch{DefaultBusinessReturnsYears: ptr(3)}, true},
		{"zero months", &OverlayPatch{MinBankStmtMonths: ptr(0)}, true},
		{"half percent", &OverlayPatch{StudentLoanImputeRule: ptr(ImputeHalfPercent)}, false},
		{"unknown impute rule", &OverlayPatch{StudentLoanImputeRule: ptr(StudentLoanImputeRule("2pct"))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultOverlays().Apply(tt.patch).Validate()
			if tt.wantErr {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}
