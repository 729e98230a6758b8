// Package catalog is the canonical mapping of document ids to borrower-facing labels.
//
// Ids are stable keys shared with intake systems and exports; labels may be
// reworded freely. An id missing from the catalog resolves to itself.
package catalog

import "sort"

// Identity & basics.
const (
	GovtID          = "GOVT_ID"
	SSNVerification = "SSN_VERIFICATION"
	GreenCardEAD    = "GREEN_CARD_EAD"
	NameChangeDocs  = "NAME_CHANGE_DOCS"
)

// Letters of explanation.
const (
	LOEGapsEmployment  = "LOE_GAPS_EMPLOYMENT"
	LOECreditInquiries = "LOE_CREDIT_INQUIRIES"
	LOELargeDeposits   = "LOE_LARGE_DEPOSITS"
	LOEAltNames        = "LOE_ALT_NAMES"
	LOEMortgageLates   = "LOE_MORTGAGE_LATES"
	LOERentFree        = "LOE_RENT_FREE"
)

// Income.
const (
	Paystub30D                 = "PAYSTUB_30D"
	W2Last2Y                   = "W2_LAST2Y"
	VOE                        = "VOE"
	K1Last2Y                   = "K1_LAST2Y"
	YTDPnL                     = "YTD_PNL"
	YTDBalanceSheet            = "YTD_BALANCE_SHEET"
	CPALetterOrLicense         = "CPA_LETTER_OR_LICENSE"
	BusinessLicenseOrWebsite   = "BUSINESS_LICENSE_OR_WEBSITE_PROOF"
	BusinessBankStatements     = "BUSINESS_BANK_STATEMENTS_2_12M"
	Form1099Last2Y             = "FORM1099_LAST2Y"
	BonusCommissionHistory     = "BONUS_COMMISSION_HISTORY"
	RentalLeases               = "RENTAL_LEASES"
	RentalScheduleELast2Y      = "RENTAL_SCHEDULE_E_LAST2Y"
	AlimonyChildSupportProof   = "ALIMONY_CHILD_SUPPORT_PROOF"
	PensionAward               = "PENSION_AWARD"
	SSAAward                   = "SSA_AWARD"
	DisabilityAward            = "DISABILITY_AWARD"
	PersonalReturnPrefix       = "TAX_RETURN_PERSONAL_1040"
	BusinessReturnPrefix       = "TAX_RETURN_BUSINESS"
	TaxReturnPersonal1040Year1 = "TAX_RETURN_PERSONAL_1040_YEARS_1"
	TaxReturnPersonal1040Year2 = "TAX_RETURN_PERSONAL_1040_YEARS_2"
)

// Assets & reserves.
const (
	BankStatements2M          = "BANK_STMTS_2M"
	BrokerageStatements2M     = "BROKERAGE_STMTS_2M"
	RetirementStatements2M    = "RETIREMENT_STMTS_2M"
	GiftLetter                = "GIFT_LETTER"
	GiftFundsProofOfTransfer  = "GIFT_FUNDS_PROOF_OF_TRANSFER"
	DonorAssetEvidence        = "DONOR_ASSET_EVIDENCE"
	EarnestMoneyProof         = "EARNEST_MONEY_PROOF"
	SaleOfAssetBillOfSale     = "SALE_OF_ASSET_BILL_OF_SALE"
	CryptoLiquidationProof    = "CRYPTO_LIQUIDATION_PROOF"
	SourceLargeDeposits       = "SOURCE_LARGE_DEPOSITS"
	DivorceDecree             = "DIVORCE_DECREE"
	SeparationAgreement       = "SEPARATION_AGREEMENT"
	AlimonyChildSupportOrder  = "ALIMONY_CHILD_SUPPORT_ORDER"
	BankruptcyDischarge       = "BK_PAPERS_DISCHARGE"
	ForeclosureDocs           = "FORECLOSURE_DOCS"
	StudentLoanDocs           = "STUDENT_LOAN_DOCS"
	PurchaseContract          = "PURCHASE_CONTRACT"
	Addenda                   = "ADDENDA"
	HomeownersInsuranceQuote  = "HOMEOWNERS_INSURANCE_QUOTE"
	CondoDocs                 = "CONDO_DOCS_BUDGET_MINUTES_INSURANCE"
	LandlordVOR12M            = "LANDLORD_VOR_12M"
	TitleTrustDocs            = "TITLE_TRUST_DOCS"
	OccupancyLetter           = "OCCUPANCY_LETTER"
	USDAHouseholdIncomeDocs   = "USDA_HOUSEHOLD_INCOME_DOCS"
	VACertificateEligibility  = "VA_COE"
	DD214                     = "DD214"
	VADisabilityAward         = "VA_DISABILITY_AWARD"
)

var labels = map[string]string{
	GovtID:          "Government-issued photo ID (Driver's License or Passport)",
	SSNVerification: "Social Security Card or SSN Verification",
	GreenCardEAD:    "Green Card or Employment Authorization Document (EAD)",
	NameChangeDocs:  "Name change documentation (marriage certificate, court order, etc.)",

	LOEGapsEmployment:  "Letter of Explanation - Employment Gaps",
	LOECreditInquiries: "Letter of Explanation - Recent Credit Inquiries",
	LOELargeDeposits:   "Letter of Explanation - Large Deposits",
	LOEAltNames:        "Letter of Explanation - Alternate Names",
	LOEMortgageLates:   "Letter of Explanation - Mortgage Payment History",
	LOERentFree:        "Letter of Explanation - Rent-Free Living Arrangement",

	Paystub30D: "Paystub - Most Recent 30 Days",
	W2Last2Y:   "W-2 Forms - Last 2 Years",
	VOE:        "Verification of Employment (VOE) - Written or Electronic",

	TaxReturnPersonal1040Year1:              "Personal Tax Return (1040) - Most Recent Year",
	TaxReturnPersonal1040Year2:              "Personal Tax Return (1040) - Last 2 Years",
	"TAX_RETURN_BUSINESS_1120S_YEARS_1":     "Business Tax Return (1120S) - Most Recent Year",
	"TAX_RETURN_BUSINESS_1120S_YEARS_2":     "Business Tax Return (1120S) - Last 2 Years",
	"TAX_RETURN_BUSINESS_1065_YEARS_1":      "Business Tax Return (1065) - Most Recent Year",
	"TAX_RETURN_BUSINESS_1065_YEARS_2":      "Business Tax Return (1065) - Last 2 Years",
	"TAX_RETURN_BUSINESS_1120_YEARS_1":      "Business Tax Return (1120) - Most Recent Year",
	"TAX_RETURN_BUSINESS_1120_YEARS_2":      "Business Tax Return (1120) - Last 2 Years",
	"TAX_RETURN_BUSINESS_SCHEDULEC_YEARS_1": "Business Tax Return (Schedule C) - Most Recent Year",
	"TAX_RETURN_BUSINESS_SCHEDULEC_YEARS_2": "Business Tax Return (Schedule C) - Last 2 Years",
	K1Last2Y:                                "K-1 Forms - Last 2 Years",
	YTDPnL:                                  "Year-to-Date Profit & Loss Statement",
	YTDBalanceSheet:                         "Year-to-Date Balance Sheet",
	CPALetterOrLicense:                      "CPA Letter or Business License",
	BusinessLicenseOrWebsite:                "Business License or Website Proof",
	BusinessBankStatements:                  "Business Bank Statements - 2 to 12 Months",

	Form1099Last2Y:         "1099 Forms - Last 2 Years",
	BonusCommissionHistory: "Bonus/Commission History - Last 2 Years",

	RentalLeases:             "Rental Property Leases",
	RentalScheduleELast2Y:    "Schedule E - Rental Income - Last 2 Years",
	AlimonyChildSupportProof: "Proof of Alimony/Child Support Receipt",
	PensionAward:             "Pension Award Letter",
	SSAAward:                 "Social Security Award Letter",
	DisabilityAward:          "Disability Award Letter",

	BankStatements2M:         "Bank Statements - Last 2 Months",
	BrokerageStatements2M:    "Brokerage Statements - Last 2 Months",
	RetirementStatements2M:   "Retirement Account Statements - Last 2 Months",
	GiftLetter:               "Gift Letter (Fannie Mae Form)",
	GiftFundsProofOfTransfer: "Proof of Gift Funds Transfer",
	DonorAssetEvidence:       "Donor Asset Evidence",
	EarnestMoneyProof:        "Earnest Money Deposit Proof",
	SaleOfAssetBillOfSale:    "Bill of Sale for Asset Sale",
	CryptoLiquidationProof:   "Cryptocurrency Liquidation Proof & Paper Trail",
	SourceLargeDeposits:      "Source Documentation for Large Deposits",

	DivorceDecree:            "Divorce Decree (all pages, including support terms)",
	SeparationAgreement:      "Separation Agreement",
	AlimonyChildSupportOrder: "Alimony/Child Support Court Order",
	BankruptcyDischarge:      "Bankruptcy Papers & Discharge Documentation",
	ForeclosureDocs:          "Foreclosure Documentation",
	StudentLoanDocs:          "Student Loan Payment/Forbearance Documentation",

	PurchaseContract:         "Purchase Contract",
	Addenda:                  "Contract Addenda",
	HomeownersInsuranceQuote: "Homeowner's Insurance Quote",
	CondoDocs:                "Condo Docs - Budget, Minutes, Insurance",
	LandlordVOR12M:           "Landlord Verification of Rent - 12 Months",
	TitleTrustDocs:           "Title/Trust Documentation",
	OccupancyLetter:          "Occupancy Letter",

	USDAHouseholdIncomeDocs:  "USDA Household Income Documentation (all occupants)",
	VACertificateEligibility: "VA Certificate of Eligibility (COE)",
	DD214:                    "DD-214 (Military Discharge Papers)",
	VADisabilityAward:        "VA Disability Award Letter",
}

// Entry is one catalog row.
type Entry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Catalog resolves document labels. The zero value is not usable; use Default.
type Catalog struct {
	labels map[string]string
}

var defaultCatalog = &Catalog{labels: labels}

// Default returns the built-in catalog. It is read-only and safe for concurrent use.
func Default() *Catalog {
	return defaultCatalog
}

// Label returns the label for id, or id itself when it is not catalogued.
func (c *Catalog) Label(id string) string {
	if label, ok := c.labels[id]; ok {
		return label
	}
	return id
}

// IsValidID reports whether id is catalogued.
func (c *Catalog) IsValidID(id string) bool {
	_, ok := c.labels[id]
	return ok
}

// All returns every entry sorted by id.
func (c *Catalog) All() []Entry {
	entries := make([]Entry, 0, len(c.labels))
	for id, label := range c.labels {
		entries = append(entries, Entry{ID: id, Label: label})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Label resolves id against the default catalog.
func Label(id string) string {
	return defaultCatalog.Label(id)
}

// IsValidID checks id against the default catalog.
func IsValidID(id string) bool {
	return defaultCatalog.IsValidID(id)
}
