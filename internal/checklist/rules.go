package checklist

import (
	"doccheck/internal/checklist/catalog"
	pstrings "doccheck/pkg/platform/strings"
)

// ownershipK1Threshold is the ownership percentage at which K-1s are required.
const ownershipK1Threshold = 25

// ruleTable builds the fixed rule sequence. Declaration order is evaluation
// order and must not depend on the application.
func ruleTable(env ruleEnv) []Rule {
	rules := make([]Rule, 0, 40)
	rules = append(rules, identityRules()...)
	rules = append(rules, employmentRules(env)...)
	rules = append(rules, selfEmploymentRules(env)...)
	rules = append(rules, incomeTypeRules()...)
	rules = append(rules, familySupportRules()...)
	rules = append(rules, rentalIncomeRules()...)
	rules = append(rules, assetRules()...)
	rules = append(rules, governmentProgramRules()...)
	rules = append(rules, propertyRules(env)...)
	rules = append(rules, creditHistoryRules()...)
	rules = append(rules, occupancyRules()...)
	return rules
}

func always(*LoanApplication) bool { return true }

func identityRules() []Rule {
	return []Rule{
		{
			ID:       "R-G-01",
			Title:    "Always require government ID",
			Category: CategoryIdentity,
			When:     always,
			Docs:     docs(doc(catalog.GovtID, "Required for all borrowers")),
		},
		{
			ID:       "R-G-02",
			Title:    "Name variations require documentation",
			Category: CategoryIdentity,
			When: func(app *LoanApplication) bool {
				return len(pstrings.DedupeAndTrim(app.NameVariations)) > 0
			},
			Docs: docs(
				doc(catalog.NameChangeDocs, "Name variations present"),
				doc(catalog.LOEAltNames, "Explain name variations"),
			),
		},
		{
			ID:       "R-G-03",
			Title:    "Recent credit inquiries require explanation",
			Category: CategoryIdentity,
			When:     func(app *LoanApplication) bool { return app.CreditInquiriesLast90Days },
			Docs:     docs(doc(catalog.LOECreditInquiries, "Recent credit inquiries in last 90 days")),
		},
		{
			ID:       "R-G-04",
			Title:    "Large deposits require documentation",
			Category: CategoryIdentity,
			When:     func(app *LoanApplication) bool { return app.LargeDepositsPresent },
			Docs: docs(
				doc(catalog.SourceLargeDeposits, "Large deposits present"),
				doc(catalog.BankStatements2M, "Bank statements to trace deposits"),
				doc(catalog.LOELargeDeposits, "Explain large deposits"),
			),
		},
		{
			ID:       "R-G-05",
			Title:    "Non-US citizens require immigration documentation",
			Category: CategoryIdentity,
			When:     func(app *LoanApplication) bool { return app.IsPermanentResident || app.HasITIN },
			Docs:     docs(doc(catalog.GreenCardEAD, "Permanent resident or ITIN holder")),
		},
	}
}

func employmentRules(env ruleEnv) []Rule {
	return []Rule{
		{
			ID:       "R-E-01",
			Title:    "W2 employment requires paystubs and W-2s",
			Category: CategoryEmployment,
			When:     func(app *LoanApplication) bool { return app.EmploymentType == EmploymentW2 },
			Docs: docs(
				doc(catalog.Paystub30D, "W2 employment - recent paystub"),
				doc(catalog.W2Last2Y, "W2 employment - last 2 years"),
			),
		},
		{
			ID:       "R-E-02",
			Title:    "Employment gaps require explanation",
			Category: CategoryEmployment,
			When: func(app *LoanApplication) bool {
				return hasEmploymentGap(app, env)
			},
			Docs: docs(doc(catalog.LOEGapsEmployment, "Employment gaps detected")),
		},
	}
}

// hasEmploymentGap compares months at the current job against the borrower's
// stated years in the line of work, allowing two months of slack.
func hasEmploymentGap(app *LoanApplication, env ruleEnv) bool {
	if app.YearsInLineOfWork == nil {
		return false
	}
	start, ok := parseDate(app.StartDate)
	if !ok {
		return false
	}
	return monthsSince(start, env.now) < *app.YearsInLineOfWork*12-2
}

func selfEmploymentRules(env ruleEnv) []Rule {
	return []Rule{
		{
			ID:       "R-SE-01",
			Title:    "Self-employed tax returns based on program and years in business",
			Category: CategorySelfEmployment,
			When: func(app *LoanApplication) bool {
				return app.IsSelfEmployed() && app.SelfEmployed != nil
			},
			Docs: taxReturnDocs(env),
		},
		{
			ID:       "R-SE-02",
			Title:    "K-1 required for ownership of 25% or more",
			Category: CategorySelfEmployment,
			When: func(app *LoanApplication) bool {
				return app.IsSelfEmployed() && app.SelfEmployed != nil &&
					app.SelfEmployed.OwnershipPercent >= ownershipK1Threshold
			},
			Docs: docs(doc(catalog.K1Last2Y, "Ownership ≥25% requires K-1")),
		},
		{
			ID:       "R-SE-03",
			Title:    "Business funds for closing require business statements and CPA letter",
			Category: CategorySelfEmployment,
			When: func(app *LoanApplication) bool {
				return app.IsSelfEmployed() && app.SelfEmployed != nil &&
					app.SelfEmployed.UsesBusinessFundsForClose
			},
			Docs: docs(
				doc(catalog.BusinessBankStatements, "Using business funds to close"),
				doc(catalog.CPALetterOrLicense, "CPA letter verifying no adverse impact"),
			),
		},
		{
			ID:       "R-SE-04",
			Title:    "Always require YTD P&L for self-employed",
			Category: CategorySelfEmployment,
			When:     func(app *LoanApplication) bool { return app.IsSelfEmployed() },
			Docs: docs(
				doc(catalog.YTDPnL, "Year-to-date profit & loss"),
				doc(catalog.YTDBalanceSheet, "Year-to-date balance sheet (if mid-year)"),
			),
		},
		{
			// Adds the 2-year personal return alongside whatever R-SE-01 emitted;
			// it does not replace a 1-year id.
			ID:       "R-SE-05",
			Title:    "Declining income requires additional year regardless of program",
			Category: CategorySelfEmployment,
			When: func(app *LoanApplication) bool {
				return app.IsSelfEmployed() && app.SelfEmployed != nil &&
					app.SelfEmployed.BusinessHasDecliningIncome
			},
			Docs: docs(doc(catalog.TaxReturnPersonal1040Year2, "Declining income - 2 years required")),
		},
		{
			ID:       "R-SE-06",
			Title:    "Business license or website proof always required",
			Category: CategorySelfEmployment,
			When:     func(app *LoanApplication) bool { return app.IsSelfEmployed() },
			Docs:     docs(doc(catalog.BusinessLicenseOrWebsite, "Verify business existence")),
		},
	}
}

func incomeTypeRules() []Rule {
	return []Rule{
		{
			ID:       "R-1099-01",
			Title:    "Commission income requires 2 years of 1099s",
			Category: CategoryIncomeType,
			When:     func(app *LoanApplication) bool { return app.HasIncome(IncomeCommission) },
			Docs: docs(
				doc(catalog.Form1099Last2Y, "1099 or commission income"),
				doc(catalog.YTDPnL, "Year-to-date proof of receipts"),
			),
		},
		{
			ID:       "R-BONUS-01",
			Title:    "Bonus or overtime requires 2 years W-2 and YTD history",
			Category: CategoryIncomeType,
			When:     func(app *LoanApplication) bool { return app.HasIncome(IncomeBonus, IncomeOvertime) },
			Docs: docs(
				doc(catalog.W2Last2Y, "Bonus/overtime requires W-2 history"),
				doc(catalog.Paystub30D, "YTD pay history for bonus/overtime"),
			),
		},
	}
}

func familySupportRules() []Rule {
	return []Rule{
		{
			ID:       "R-FAM-01",
			Title:    "Receiving support requires proof and continuance documentation",
			Category: CategoryFamilySupport,
			When: func(app *LoanApplication) bool {
				return app.ReceivesChildOrAlimony ||
					app.HasIncome(IncomeAlimonyReceived, IncomeChildSupportReceived)
			},
			Docs: docs(
				doc(catalog.AlimonyChildSupportProof, "Proof of support receipt (6-12 months)"),
				doc(catalog.LOEGapsEmployment, "Proof of continuance ≥3 years"),
			),
		},
		{
			ID:       "R-FAM-02",
			Title:    "Paying support requires court order",
			Category: CategoryFamilySupport,
			When:     func(app *LoanApplication) bool { return app.PaysAlimony || app.PaysChildSupport },
			Docs:     docs(doc(catalog.AlimonyChildSupportOrder, "Court order for support payments")),
		},
		{
			ID:       "R-FAM-03",
			Title:    "Divorced requires divorce decree",
			Category: CategoryFamilySupport,
			When:     func(app *LoanApplication) bool { return app.MaritalStatus == MaritalDivorced },
			Docs:     docs(doc(catalog.DivorceDecree, "Divorce decree with support terms")),
		},
		{
			ID:       "R-FAM-04",
			Title:    "Support claimed as asset requires documentation",
			Category: CategoryFamilySupport,
			When:     func(app *LoanApplication) bool { return app.SupportOrderDocsClaimedInAssets },
			Docs:     docs(doc(catalog.AlimonyChildSupportProof, "Support income documentation")),
		},
	}
}

func rentalIncomeRules() []Rule {
	return []Rule{
		{
			ID:       "R-RENT-01",
			Title:    "Rental income requires leases and Schedule E",
			Category: CategoryIncomeType,
			When:     func(app *LoanApplication) bool { return app.HasIncome(IncomeRental) },
			Docs: docs(
				doc(catalog.RentalLeases, "Rental property leases"),
				doc(catalog.RentalScheduleELast2Y, "Schedule E - last 2 years"),
			),
		},
	}
}

func assetRules() []Rule {
	return []Rule{
		{
			ID:       "R-AST-01",
			Title:    "Assets used to qualify require statements",
			Category: CategoryAssets,
			When:     func(app *LoanApplication) bool { return len(app.Assets) > 0 },
			Docs: ComputedDocs(func(app *LoanApplication) []DocSpec {
				var specs []DocSpec
				if app.HasAsset(AssetChecking, AssetSavings) {
					specs = append(specs, doc(catalog.BankStatements2M, "Bank statements for assets"))
				}
				if app.HasAsset(AssetBrokerage) {
					specs = append(specs, doc(catalog.BrokerageStatements2M, "Brokerage statements"))
				}
				if app.HasAsset(AssetRetirement) {
					specs = append(specs, doc(catalog.RetirementStatements2M, "Retirement account statements"))
				}
				return specs
			}),
		},
		{
			ID:       "R-AST-02",
			Title:    "Gift funds require gift letter and donor documentation",
			Category: CategoryAssets,
			When:     func(app *LoanApplication) bool { return app.HasDownPaymentSource(DownPaymentGift) },
			Docs: docs(
				doc(catalog.GiftLetter, "Gift letter (Fannie Mae form)"),
				doc(catalog.DonorAssetEvidence, "Donor asset evidence"),
				doc(catalog.GiftFundsProofOfTransfer, "Proof of gift transfer"),
			),
		},
		{
			ID:       "R-AST-03",
			Title:    "Crypto liquidation requires proof and paper trail",
			Category: CategoryAssets,
			When: func(app *LoanApplication) bool {
				return app.HasDownPaymentSource(DownPaymentCryptoLiquidated) || app.HasAsset(AssetCrypto)
			},
			Docs: docs(
				doc(catalog.CryptoLiquidationProof, "Cryptocurrency liquidation proof"),
				doc(catalog.BankStatements2M, "Full paper trail into verifiable funds"),
			),
		},
		{
			ID:       "R-AST-04",
			Title:    "Sale of asset requires bill of sale",
			Category: CategoryAssets,
			When:     func(app *LoanApplication) bool { return app.HasDownPaymentSource(DownPaymentSaleOfAsset) },
			Docs:     docs(doc(catalog.SaleOfAssetBillOfSale, "Bill of sale for asset")),
		},
	}
}

func governmentProgramRules() []Rule {
	return []Rule{
		{
			ID:           "R-FHA-01",
			Title:        "FHA may require CAIVRS check evidence",
			Category:     CategoryGovernmentProgram,
			Conditional:  true,
			ProgramScope: []LoanProgram{ProgramFHA},
			When:         func(app *LoanApplication) bool { return app.Program == ProgramFHA },
			Docs:         docs(doc(catalog.GovtID, "FHA program requirement")),
		},
		{
			ID:           "R-VA-01",
			Title:        "VA requires COE and service documentation",
			Category:     CategoryGovernmentProgram,
			ProgramScope: []LoanProgram{ProgramVA},
			When:         func(app *LoanApplication) bool { return app.Program == ProgramVA },
			Docs: ComputedDocs(func(app *LoanApplication) []DocSpec {
				specs := []DocSpec{doc(catalog.VACertificateEligibility, "VA Certificate of Eligibility")}
				if app.VA != nil && app.VA.ServiceType != "" {
					specs = append(specs, doc(catalog.DD214, "Military discharge papers"))
				}
				if app.HasIncome(IncomeVACompensation) {
					specs = append(specs, doc(catalog.VADisabilityAward, "VA disability award letter"))
				}
				return specs
			}),
		},
		{
			ID:           "R-USDA-01",
			Title:        "USDA requires household income documentation",
			Category:     CategoryGovernmentProgram,
			ProgramScope: []LoanProgram{ProgramUSDA},
			When: func(app *LoanApplication) bool {
				return app.Program == ProgramUSDA && app.USDA != nil && app.USDA.HouseholdMembers > 0
			},
			Docs: docs(doc(catalog.USDAHouseholdIncomeDocs, "Household income for all occupants (paystubs/W-2/award letters)")),
		},
	}
}

func propertyRules(env ruleEnv) []Rule {
	return []Rule{
		{
			ID:       "R-PR-01",
			Title:    "Purchase transaction requires contract and earnest money proof",
			Category: CategoryProperty,
			When:     func(app *LoanApplication) bool { return app.TransactionType == TransactionPurchase },
			Docs: docs(
				doc(catalog.PurchaseContract, "Purchase contract"),
				doc(catalog.EarnestMoneyProof, "Earnest money deposit proof"),
			),
		},
		{
			ID:       "R-PR-02",
			Title:    "Condo requires condo documentation",
			Category: CategoryProperty,
			When: func(app *LoanApplication) bool {
				return env.overlays.RequireCondoDocs && (app.PropertyType == PropertyCondo || app.IsCondo)
			},
			Docs: docs(doc(catalog.CondoDocs, "Condo budget, minutes, insurance")),
		},
		{
			// Inert until the application carries title vesting data.
			ID:          "R-PR-03",
			Title:       "Trust vesting requires trust documentation",
			Category:    CategoryProperty,
			Conditional: true,
			When:        func(*LoanApplication) bool { return false },
			Docs:        docs(doc(catalog.TitleTrustDocs, "Title/trust documentation")),
		},
		{
			ID:       "R-PR-04",
			Title:    "Homeowners insurance required",
			Category: CategoryProperty,
			When:     always,
			Docs:     docs(doc(catalog.HomeownersInsuranceQuote, "Homeowner insurance quote prior to CTC")),
		},
	}
}

func creditHistoryRules() []Rule {
	return []Rule{
		{
			ID:       "R-CR-01",
			Title:    "Bankruptcy requires discharge documentation",
			Category: CategoryCreditHistory,
			When:     func(app *LoanApplication) bool { return app.Bankruptcy != nil },
			Docs:     docs(doc(catalog.BankruptcyDischarge, "Bankruptcy papers & discharge")),
		},
		{
			ID:       "R-CR-02",
			Title:    "Foreclosure requires documentation",
			Category: CategoryCreditHistory,
			When:     func(app *LoanApplication) bool { return app.ForeclosureHistoryDate != "" },
			Docs:     docs(doc(catalog.ForeclosureDocs, "Foreclosure documentation")),
		},
		{
			ID:       "R-CR-03",
			Title:    "Mortgage lates require explanation and proof of cure",
			Category: CategoryCreditHistory,
			When:     func(app *LoanApplication) bool { return app.MortgageLatesIn12Mo > 0 },
			Docs:     docs(doc(catalog.LOEMortgageLates, "Mortgage payment history explanation")),
		},
	}
}

func occupancyRules() []Rule {
	return []Rule{
		{
			ID:          "R-OCC-01",
			Title:       "Rent history with thin credit may require landlord VOR",
			Category:    CategoryOccupancy,
			Conditional: true,
			When: func(app *LoanApplication) bool {
				return app.RentHistory != nil && app.RentHistory.PayingRent
			},
			Docs: docs(doc(catalog.LandlordVOR12M, "Landlord verification of rent - 12 months")),
		},
		{
			ID:       "R-OCC-02",
			Title:    "Living rent-free requires explanation",
			Category: CategoryOccupancy,
			When: func(app *LoanApplication) bool {
				return app.RentHistory != nil && app.RentHistory.Method == RentLivingRentFree
			},
			Docs: docs(doc(catalog.LOERentFree, "Explain rent-free living arrangement")),
		},
	}
}
