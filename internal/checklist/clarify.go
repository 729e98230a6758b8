package checklist

// Clarification messages.
const (
	ClarifyProgramMissing        = "Loan program must be specified"
	ClarifyEmploymentTypeMissing = "Employment type must be specified"
	ClarifySelfEmployedDetail    = "Self-employed borrowers must provide business details"
	ClarifyBusinessStartDate     = "Business start date required for self-employed borrowers"
	ClarifyBusinessStartDateBad  = "Business start date must be a valid date (YYYY-MM-DD)"
	ClarifyEmploymentStartBad    = "Employment start date must be a valid date (YYYY-MM-DD)"
	ClarifyUSDAHousehold         = "USDA applications require household member information"
	ClarifyVAService             = "VA applications should specify service details"
)

// Clarify lists the data gaps that reduce checklist accuracy. It never
// fails and does not depend on rule evaluation.
func Clarify(app *LoanApplication) []string {
	clarifications := []string{}

	if app.Program == "" {
		clarifications = append(clarifications, ClarifyProgramMissing)
	}
	if app.EmploymentType == "" {
		clarifications = append(clarifications, ClarifyEmploymentTypeMissing)
	}
	if app.IsSelfEmployed() && app.SelfEmployed == nil {
		clarifications = append(clarifications, ClarifySelfEmployedDetail)
	}
	if se := app.SelfEmployed; app.IsSelfEmployed() && se != nil {
		if se.BusinessStartDate == "" {
			clarifications = append(clarifications, ClarifyBusinessStartDate)
		} else if _, ok := parseDate(se.BusinessStartDate); !ok {
			clarifications = append(clarifications, ClarifyBusinessStartDateBad)
		}
	}
	if app.StartDate != "" {
		if _, ok := parseDate(app.StartDate); !ok {
			clarifications = append(clarifications, ClarifyEmploymentStartBad)
		}
	}
	if app.Program == ProgramUSDA && app.USDA == nil {
		clarifications = append(clarifications, ClarifyUSDAHousehold)
	}
	if app.Program == ProgramVA && app.VA == nil {
		clarifications = append(clarifications, ClarifyVAService)
	}
	return clarifications
}
