package checklist

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "doccheck/pkg/domain-errors"
)

func TestLoanApplication_Validate(t *testing.T) {
	tests := []struct {
		name    string
		app     LoanApplication
		wantMsg string
	}{
		{name: "empty is valid", app: LoanApplication{}},
		{
			name: "fully populated",
			app: LoanApplication{
				Program:         ProgramFHA,
				TransactionType: TransactionPurchase,
				Occupancy:       OccupancyPrimary,
				PropertyType:    PropertyTwoToFour,
				MaritalStatus:   MaritalMarried,
				EmploymentType:  EmploymentSelfEmployed,
				SelfEmployed:    &SelfEmployment{BusinessType: BusinessSCorp, OwnershipPercent: 50},
				Incomes:         []Income{{Type: IncomeBonus}},
				Assets:          []Asset{{Type: AssetGift}},
				VA:              &VADetail{ServiceType: ServiceGuard},
				RentHistory:     &RentHistory{Method: RentPropertyManager},
				Bankruptcy:      &BankruptcyHistory{Chapter: Chapter13},
			},
		},
		{name: "unknown program", app: LoanApplication{Program: "Jumbo"}, wantMsg: `program has unsupported value "Jumbo"`},
		{name: "unknown employment", app: LoanApplication{EmploymentType: "Gig"}, wantMsg: `employment_type has unsupported value "Gig"`},
		{
			name:    "unknown business type",
			app:     LoanApplication{SelfEmployed: &SelfEmployment{BusinessType: "Trust"}},
			wantMsg: `self_employed.business_type has unsupported value "Trust"`,
		},
		{
			name:    "ownership out of range",
			app:     LoanApplication{SelfEmployed: &SelfEmployment{OwnershipPercent: 120}},
			wantMsg: "self_employed.ownership_percent must be between 0 and 100",
		},
		{
			name:    "unknown income type",
			app:     LoanApplication{Incomes: []Income{{Type: IncomeBasePay}, {Type: "Lottery"}}},
			wantMsg: `incomes[1].type has unsupported value "Lottery"`,
		},
		{
			name:    "negative lates",
			app:     LoanApplication{MortgageLatesIn12Mo: -1},
			wantMsg: "mortgage_lates_in_12_mo must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Equal(t, tt.wantMsg, dErrors.MessageOf(err))
		})
	}
}

func TestLoanApplication_DecodeSnakeCase(t *testing.T) {
	payload := []byte(`{
		"program": "VA",
		"employment_type": "SelfEmployed",
		"self_employed": {"business_type": "LLC", "business_start_date": "2022-03-01", "ownership_percent": 40},
		"bk_history": {"chapter": "7"},
		"down_payment_source": ["Gift"],
		"name_variations": ["J. Doe"]
	}`)

	var app LoanApplication
	require.NoError(t, json.Unmarshal(payload, &app))
	assert.Equal(t, ProgramVA, app.Program)
	require.NotNil(t, app.SelfEmployed)
	assert.Equal(t, BusinessLLC, app.SelfEmployed.BusinessType)
	assert.InDelta(t, 40, app.SelfEmployed.OwnershipPercent, 0)
	require.NotNil(t, app.Bankruptcy)
	assert.Equal(t, Chapter7, app.Bankruptcy.Chapter)
	assert.True(t, app.HasDownPaymentSource(DownPaymentGift))
	assert.True(t, app.IsSelfEmployed())
}
