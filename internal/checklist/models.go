package checklist

import (
	"fmt"

	dErrors "doccheck/pkg/domain-errors"
)

// LoanProgram is the agency program the loan is originated under.
type LoanProgram string

const (
	ProgramConventional LoanProgram = "Conventional"
	ProgramFHA          LoanProgram = "FHA"
	ProgramVA           LoanProgram = "VA"
	ProgramUSDA         LoanProgram = "USDA"
)

// TransactionType distinguishes purchases from refinances.
type TransactionType string

const (
	TransactionPurchase     TransactionType = "Purchase"
	TransactionRateTermRefi TransactionType = "RateTermRefi"
	TransactionCashOutRefi  TransactionType = "CashOutRefi"
)

type Occupancy string

const (
	OccupancyPrimary    Occupancy = "Primary"
	OccupancySecondHome Occupancy = "SecondHome"
	OccupancyInvestment Occupancy = "Investment"
)

type PropertyType string

const (
	PropertySFR          PropertyType = "SFR"
	PropertyCondo        PropertyType = "Condo"
	PropertyPUD          PropertyType = "PUD"
	PropertyTwoToFour    PropertyType = "2-4 Unit"
	PropertyManufactured PropertyType = "Manufactured"
)

type EmploymentType string

const (
	EmploymentW2           EmploymentType = "W2"
	EmploymentSelfEmployed EmploymentType = "SelfEmployed"
	Employment1099         EmploymentType = "1099"
	EmploymentRetired      EmploymentType = "Retired"
	EmploymentUnemployed   EmploymentType = "Unemployed"
)

// BusinessType is the legal entity a self-employed borrower operates through.
type BusinessType string

const (
	BusinessSoleProp    BusinessType = "SoleProp"
	BusinessLLC         BusinessType = "LLC"
	BusinessSCorp       BusinessType = "SCorp"
	BusinessCCorp       BusinessType = "CCorp"
	BusinessPartnership BusinessType = "Partnership"
)

type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "Single"
	MaritalMarried   MaritalStatus = "Married"
	MaritalSeparated MaritalStatus = "Separated"
	MaritalDivorced  MaritalStatus = "Divorced"
)

type IncomeType string

const (
	IncomeBasePay              IncomeType = "BasePay"
	IncomeOvertime             IncomeType = "Overtime"
	IncomeBonus                IncomeType = "Bonus"
	IncomeCommission           IncomeType = "Commission"
	IncomeSelfEmployment       IncomeType = "SelfEmployment"
	IncomeRental               IncomeType = "Rental"
	IncomeAlimonyReceived      IncomeType = "AlimonyReceived"
	IncomeChildSupportReceived IncomeType = "ChildSupportReceived"
	IncomePension              IncomeType = "Pension"
	IncomeSocialSecurity       IncomeType = "SocialSecurity"
	IncomeDisability           IncomeType = "Disability"
	IncomeVACompensation       IncomeType = "VACompensation"
	IncomeOther                IncomeType = "Other"
)

type AssetType string

const (
	AssetChecking   AssetType = "Checking"
	AssetSavings    AssetType = "Savings"
	AssetBrokerage  AssetType = "Brokerage"
	AssetRetirement AssetType = "Retirement"
	AssetCashOnHand AssetType = "CashOnHand"
	AssetGift       AssetType = "Gift"
	AssetCrypto     AssetType = "Crypto"
	AssetOther      AssetType = "Other"
)

// DownPaymentSource names where funds to close come from.
type DownPaymentSource string

const (
	DownPaymentOwnFunds         DownPaymentSource = "OwnFunds"
	DownPaymentGift             DownPaymentSource = "Gift"
	DownPaymentGrant            DownPaymentSource = "Grant"
	DownPaymentEmployer         DownPaymentSource = "Employer"
	DownPaymentSaleOfAsset      DownPaymentSource = "SaleOfAsset"
	DownPaymentCryptoLiquidated DownPaymentSource = "CryptoLiquidated"
	DownPaymentOther            DownPaymentSource = "Other"
)

type ServiceType string

const (
	ServiceRegular  ServiceType = "Regular"
	ServiceReserves ServiceType = "Reserves"
	ServiceGuard    ServiceType = "Guard"
)

type RentMethod string

const (
	RentPrivateLandlord RentMethod = "PrivateLandlord"
	RentPropertyManager RentMethod = "PropertyManager"
	RentLivingRentFree  RentMethod = "LivingRentFree"
)

type BankruptcyChapter string

const (
	Chapter7  BankruptcyChapter = "7"
	Chapter13 BankruptcyChapter = "13"
)

// LoanApplication is the immutable snapshot every rule reads. Optional data
// is expressed with zero values, nil pointers or empty slices; rules treat
// absence as "condition not met".
type LoanApplication struct {
	Program              LoanProgram         `json:"program,omitempty"`
	TransactionType      TransactionType     `json:"transaction_type,omitempty"`
	Occupancy            Occupancy           `json:"occupancy,omitempty"`
	PropertyType         PropertyType        `json:"property_type,omitempty"`
	PurchasePrice        *float64            `json:"purchase_price,omitempty"`
	LoanAmount           *float64            `json:"loan_amount,omitempty"`
	DownPaymentSource    []DownPaymentSource `json:"down_payment_source,omitempty"`
	IsFirstTimeHomebuyer bool                `json:"is_first_time_homebuyer,omitempty"`

	CreditScore            *int               `json:"credit_score,omitempty"`
	Bankruptcy             *BankruptcyHistory `json:"bk_history,omitempty"`
	ForeclosureHistoryDate string             `json:"foreclosure_history_date,omitempty"`
	MortgageLatesIn12Mo    int                `json:"mortgage_lates_in_12_mo,omitempty"`

	MaritalStatus       MaritalStatus `json:"marital_status,omitempty"`
	IsUSCitizen         bool          `json:"is_us_citizen,omitempty"`
	IsPermanentResident bool          `json:"is_permanent_resident,omitempty"`
	HasITIN             bool          `json:"has_itin,omitempty"`

	EmploymentType    EmploymentType  `json:"employment_type,omitempty"`
	EmployerName      string          `json:"employer_name,omitempty"`
	StartDate         string          `json:"start_date,omitempty"`
	YearsInLineOfWork *float64        `json:"years_in_line_of_work,omitempty"`
	SelfEmployed      *SelfEmployment `json:"self_employed,omitempty"`

	Incomes []Income `json:"incomes,omitempty"`
	Assets  []Asset  `json:"assets,omitempty"`

	PaysAlimony                     bool `json:"pays_alimony,omitempty"`
	PaysChildSupport                bool `json:"pays_child_support,omitempty"`
	ReceivesChildOrAlimony          bool `json:"receives_child_or_alimony,omitempty"`
	SupportOrderDocsClaimedInAssets bool `json:"support_order_docs_claimed_in_assets,omitempty"`

	IsCondo           bool `json:"is_condo,omitempty"`
	IsNewConstruction bool `json:"is_new_construction,omitempty"`

	NameVariations            []string     `json:"name_variations,omitempty"`
	LargeDepositsPresent      bool         `json:"large_deposits_present,omitempty"`
	CreditInquiriesLast90Days bool         `json:"credit_inquiries_last_90_days,omitempty"`
	RentHistory               *RentHistory `json:"rent_history,omitempty"`

	VA   *VADetail   `json:"va,omitempty"`
	USDA *USDADetail `json:"usda,omitempty"`
}

// SelfEmployment describes the borrower's business.
type SelfEmployment struct {
	BusinessType               BusinessType `json:"business_type,omitempty"`
	BusinessStartDate          string       `json:"business_start_date,omitempty"`
	OwnershipPercent           float64      `json:"ownership_percent,omitempty"`
	UsesBusinessFundsForClose  bool         `json:"uses_business_funds_for_close,omitempty"`
	BusinessHasDecliningIncome bool         `json:"business_has_declining_income,omitempty"`
}

type Income struct {
	Type               IncomeType `json:"type"`
	MonthlyAmount      float64    `json:"monthly_amount"`
	StartDate          string     `json:"start_date,omitempty"`
	ExpectedToContinue *bool      `json:"expected_to_continue,omitempty"`
}

type Asset struct {
	Type         AssetType `json:"type"`
	Balance      float64   `json:"balance"`
	AccountTitle string    `json:"account_title,omitempty"`
}

type BankruptcyHistory struct {
	Chapter       BankruptcyChapter `json:"chapter"`
	DischargeDate string            `json:"discharge_date,omitempty"`
}

type RentHistory struct {
	PayingRent bool       `json:"paying_rent,omitempty"`
	Method     RentMethod `json:"method,omitempty"`
}

type VADetail struct {
	PriorUseOfEntitlement bool        `json:"prior_use_of_entitlement,omitempty"`
	ServiceType           ServiceType `json:"service_type,omitempty"`
}

type USDADetail struct {
	HouseholdMembers           int      `json:"household_members"`
	NonBorrowerHouseholdIncome *float64 `json:"non_borrower_household_income,omitempty"`
}

// HasIncome reports whether any income entry has one of the given types.
func (a *LoanApplication) HasIncome(types ...IncomeType) bool {
	for _, inc := range a.Incomes {
		for _, t := range types {
			if inc.Type == t {
				return true
			}
		}
	}
	return false
}

// HasAsset reports whether any asset entry has one of the given types.
func (a *LoanApplication) HasAsset(types ...AssetType) bool {
	for _, asset := range a.Assets {
		for _, t := range types {
			if asset.Type == t {
				return true
			}
		}
	}
	return false
}

// HasDownPaymentSource reports whether src is among the declared down payment sources.
func (a *LoanApplication) HasDownPaymentSource(src DownPaymentSource) bool {
	for _, s := range a.DownPaymentSource {
		if s == src {
			return true
		}
	}
	return false
}

// IsSelfEmployed reports whether the borrower's employment type is SelfEmployed.
func (a *LoanApplication) IsSelfEmployed() bool {
	return a.EmploymentType == EmploymentSelfEmployed
}

// Validate checks that every enumerated value present on the application is
// one the engine understands. Absent values are fine; the clarification pass
// reports the ones that matter.
//
// Errors: CodeValidation naming the first offending field.
func (a *LoanApplication) Validate() error {
	checks := []struct {
		field string
		value string
		ok    bool
	}{
		{"program", string(a.Program), a.Program == "" || validPrograms[a.Program]},
		{"transaction_type", string(a.TransactionType), a.TransactionType == "" || validTransactions[a.TransactionType]},
		{"occupancy", string(a.Occupancy), a.Occupancy == "" || validOccupancies[a.Occupancy]},
		{"property_type", string(a.PropertyType), a.PropertyType == "" || validPropertyTypes[a.PropertyType]},
		{"marital_status", string(a.MaritalStatus), a.MaritalStatus == "" || validMaritalStatuses[a.MaritalStatus]},
		{"employment_type", string(a.EmploymentType), a.EmploymentType == "" || validEmploymentTypes[a.EmploymentType]},
	}
	for _, c := range checks {
		if !c.ok {
			return invalidValue(c.field, c.value)
		}
	}

	if se := a.SelfEmployed; se != nil {
		if se.BusinessType != "" && !validBusinessTypes[se.BusinessType] {
			return invalidValue("self_employed.business_type", string(se.BusinessType))
		}
		if se.OwnershipPercent < 0 || se.OwnershipPercent > 100 {
			return dErrors.New(dErrors.CodeValidation, "self_employed.ownership_percent must be between 0 and 100")
		}
	}
	for i, inc := range a.Incomes {
		if !validIncomeTypes[inc.Type] {
			return invalidValue(fmt.Sprintf("incomes[%d].type", i), string(inc.Type))
		}
	}
	for i, asset := range a.Assets {
		if !validAssetTypes[asset.Type] {
			return invalidValue(fmt.Sprintf("assets[%d].type", i), string(asset.Type))
		}
	}
	for i, src := range a.DownPaymentSource {
		if !validDownPaymentSources[src] {
			return invalidValue(fmt.Sprintf("down_payment_source[%d]", i), string(src))
		}
	}
	if a.VA != nil && a.VA.ServiceType != "" && !validServiceTypes[a.VA.ServiceType] {
		return invalidValue("va.service_type", string(a.VA.ServiceType))
	}
	if a.RentHistory != nil && a.RentHistory.Method != "" && !validRentMethods[a.RentHistory.Method] {
		return invalidValue("rent_history.method", string(a.RentHistory.Method))
	}
	if a.Bankruptcy != nil && a.Bankruptcy.Chapter != "" && a.Bankruptcy.Chapter != Chapter7 && a.Bankruptcy.Chapter != Chapter13 {
		return invalidValue("bk_history.chapter", string(a.Bankruptcy.Chapter))
	}
	if a.MortgageLatesIn12Mo < 0 {
		return dErrors.New(dErrors.CodeValidation, "mortgage_lates_in_12_mo must not be negative")
	}
	return nil
}

func invalidValue(field, value string) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s has unsupported value %q", field, value))
}

var (
	validPrograms = map[LoanProgram]bool{
		ProgramConventional: true, ProgramFHA: true, ProgramVA: true, ProgramUSDA: true,
	}
	validTransactions = map[TransactionType]bool{
		TransactionPurchase: true, TransactionRateTermRefi: true, TransactionCashOutRefi: true,
	}
	validOccupancies = map[Occupancy]bool{
		OccupancyPrimary: true, OccupancySecondHome: true, OccupancyInvestment: true,
	}
	validPropertyTypes = map[PropertyType]bool{
		PropertySFR: true, PropertyCondo: true, PropertyPUD: true, PropertyTwoToFour: true, PropertyManufactured: true,
	}
	validMaritalStatuses = map[MaritalStatus]bool{
		MaritalSingle: true, MaritalMarried: true, MaritalSeparated: true, MaritalDivorced: true,
	}
	validEmploymentTypes = map[EmploymentType]bool{
		EmploymentW2: true, EmploymentSelfEmployed: true, Employment1099: true, EmploymentRetired: true, EmploymentUnemployed: true,
	}
	validBusinessTypes = map[BusinessType]bool{
		BusinessSoleProp: true, BusinessLLC: true, BusinessSCorp: true, BusinessCCorp: true, BusinessPartnership: true,
	}
	validIncomeTypes = map[IncomeType]bool{
		IncomeBasePay: true, IncomeOvertime: true, IncomeBonus: true, IncomeCommission: true,
		IncomeSelfEmployment: true, IncomeRental: true, IncomeAlimonyReceived: true,
		IncomeChildSupportReceived: true, IncomePension: true, IncomeSocialSecurity: true,
		IncomeDisability: true, IncomeVACompensation: true, IncomeOther: true,
	}
	validAssetTypes = map[AssetType]bool{
		AssetChecking: true, AssetSavings: true, AssetBrokerage: true, AssetRetirement: true,
		AssetCashOnHand: true, AssetGift: true, AssetCrypto: true, AssetOther: true,
	}
	validDownPaymentSources = map[DownPaymentSource]bool{
		DownPaymentOwnFunds: true, DownPaymentGift: true, DownPaymentGrant: true, DownPaymentEmployer: true,
		DownPaymentSaleOfAsset: true, DownPaymentCryptoLiquidated: true, DownPaymentOther: true,
	}
	validServiceTypes = map[ServiceType]bool{
		ServiceRegular: true, ServiceReserves: true, ServiceGuard: true,
	}
	validRentMethods = map[RentMethod]bool{
		RentPrivateLandlord: true, RentPropertyManager: true, RentLivingRentFree: true,
	}
)

// DocRequest is one candidate document together with its provenance.
// Two requests with the same ID denote the same physical document.
type DocRequest struct {
	ID           string        `json:"id"`
	Label        string        `json:"label"`
	Reason       string        `json:"reason"`
	RuleHits     []string      `json:"rule_hits"`
	Conditional  bool          `json:"conditional"`
	ProgramScope []LoanProgram `json:"program_scope,omitempty"`
}

// Result is the computed checklist.
// Invariant: no id repeats within or across Required and NiceToHave.
type Result struct {
	Required       []DocRequest `json:"required"`
	NiceToHave     []DocRequest `json:"nice_to_have"`
	Clarifications []string     `json:"clarifications"`
}

// IDs returns the ids of docs in order.
func IDs(docs []DocRequest) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}

// Find returns the document with id from docs.
func Find(docs []DocRequest, id string) (DocRequest, bool) {
	for _, d := range docs {
		if d.ID == id {
			return d, true
		}
	}
	return DocRequest{}, false
}
