package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClarify(t *testing.T) {
	tests := []struct {
		name string
		app  *LoanApplication
		want []string
	}{
		{
			name: "complete W2 application",
			app:  &LoanApplication{Program: ProgramConventional, EmploymentType: EmploymentW2},
			want: []string{},
		},
		{
			name: "program and employment missing",
			app:  &LoanApplication{},
			want: []string{ClarifyProgramMissing, ClarifyEmploymentTypeMissing},
		},
		{
			name: "self-employed without detail",
			app:  &LoanApplication{Program: ProgramFHA, EmploymentType: EmploymentSelfEmployed},
			want: []string{ClarifySelfEmployedDetail},
		},
		{
			name: "self-employed without start date",
			app: &LoanApplication{
				Program:        ProgramFHA,
				EmploymentType: EmploymentSelfEmployed,
				SelfEmployed:   &SelfEmployment{BusinessType: BusinessLLC},
			},
			want: []string{ClarifyBusinessStartDate},
		},
		{
			name: "self-employed with unparsable start date",
			app: &LoanApplication{
				Program:        ProgramFHA,
				EmploymentType: EmploymentSelfEmployed,
				SelfEmployed:   &SelfEmployment{BusinessType: BusinessLLC, BusinessStartDate: "03/2021"},
			},
			want: []string{ClarifyBusinessStartDateBad},
		},
		{
			name: "USDA without household detail",
			app:  &LoanApplication{Program: ProgramUSDA, EmploymentType: EmploymentW2},
			want: []string{ClarifyUSDAHousehold},
		},
		{
			name: "VA without service detail",
			app:  &LoanApplication{Program: ProgramVA, EmploymentType: EmploymentRetired},
			want: []string{ClarifyVAService},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clarify(tt.app))
		})
	}
}
