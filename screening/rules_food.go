package screening

// Food and nutrition assistance programs.

// Monthly federal poverty level amounts by household size, extrapolated
// past 8 at $449 per additional member. Basis for the SNAP budget.
var snapFPLMonthly = map[int]float64{
	1: 1255, 2: 1704, 3: 2152, 4: 2600, 5: 3049, 6: 3497, 7: 3945, 8: 4394,
}

func snapFPLLimit(size int, multiplier float64) float64 {
	limit, ok := snapFPLMonthly[size]
	if !ok {
		if size > 8 {
			limit = snapFPLMonthly[8] + float64(size-8)*449
		} else {
			limit = snapFPLMonthly[1]
		}
	}
	return limit * multiplier
}

// snapNetIncome computes the SNAP net-income budget: gross earned plus
// unearned income less child support paid, then the 20% earned-income
// deduction, a size-indexed standard deduction, a homeless deduction, a
// dependent-care deduction, medical expenses over $35, and an
// excess-shelter deduction against half of adjusted income.
func snapNetIncome(a *Aggregate) float64 {
	gross := a.IncomeHouseholdWageSelfEmploymentMonthly +
		a.IncomeHouseholdBoarderMonthly +
		a.IncomeHouseholdUnearnedMonthly -
		a.ExpenseHouseholdChildSupportMonthly

	deductions := 0.0

	earned := a.IncomeHouseholdWageSelfEmploymentMonthly + a.IncomeHouseholdBoarderMonthly
	deductions += earned * 0.20

	size := len(a.Person) + a.MembersPregnant
	switch {
	case size <= 3:
		deductions += 198
	case size == 4:
		deductions += 208
	case size == 5:
		deductions += 244
	default:
		deductions += 279
	}

	if a.Household[0].LivingShelter {
		deductions += 179.66
	}

	deductions += a.ExpenseHouseholdChildDependentCareMonthly

	if a.ExpenseHouseholdMedicalMonthly > 35 {
		deductions += a.ExpenseHouseholdMedicalMonthly - 35
	}

	adjusted := gross - deductions
	if adjusted < 0 {
		adjusted = 0
	}

	// $992 standard utility allowance on top of shelter costs.
	shelter := a.ExpenseHouseholdRentMortgageMonthly + 992
	excessShelter := shelter - adjusted/2
	if excessShelter < 0 {
		excessShelter = 0
	}

	net := adjusted - excessShelter
	if net < 0 {
		net = 0
	}
	return net
}

// snapFPLMultiplier picks the applicable FPL percentage: 200% with
// elderly/disabled/blind members or care expenses, 150% with earned
// income, 130% otherwise.
func snapFPLMultiplier(a *Aggregate) float64 {
	hasElderly := false
	hasDisabledOrBlind := false
	for _, p := range a.Person {
		if p.Age >= 60 {
			hasElderly = true
		}
		if p.Disabled || p.Blind {
			hasDisabledOrBlind = true
		}
	}
	if a.ExpenseHouseholdHasChildOrDependentCare || hasElderly || hasDisabledOrBlind {
		return 2.0
	}
	if a.IncomeHouseholdWageSelfEmploymentMonthly > 0 || a.IncomeHouseholdBoarderMonthly > 0 {
		return 1.5
	}
	return 1.3
}

// S2R007 SNAP: categorical eligibility when every member receives SSI
// or Cash Assistance, otherwise the net-income budget against the FPL.
var ruleSNAP = Rule{
	Code:        "S2R007",
	Description: "Supplemental Nutrition Assistance Program (SNAP/Food Stamps) (HRA) - Food assistance program",
	Eligible: func(a *Aggregate) bool {
		allHaveBenefits := len(a.Person) > 0
		for _, p := range a.Person {
			hasSSIOrCA := false
			for _, inc := range p.Incomes {
				if inc.Type == SSI || inc.Type == CashAssistance {
					hasSSIOrCA = true
					break
				}
			}
			if !hasSSIOrCA {
				allHaveBenefits = false
				break
			}
		}
		if allHaveBenefits {
			return true
		}

		size := len(a.Person) + a.MembersPregnant
		return snapNetIncome(a) <= snapFPLLimit(size, snapFPLMultiplier(a))
	},
}

// Yearly income limits for WIC (185% of poverty).
var wicThresholds = map[int]float64{
	1: 27861, 2: 37814, 3: 47767, 4: 57720,
	5: 67673, 6: 77626, 7: 87579, 8: 97532,
}

// S2R022 WIC: pregnant member or child under 5, plus the income test.
var ruleWIC = Rule{
	Code:        "S2R022",
	Description: "Women, Infants and Children (WIC) (NYS DOH) - Nutrition assistance for pregnant women and young children",
	Eligible: func(a *Aggregate) bool {
		hasEligiblePerson := false
		for _, p := range a.Person {
			if p.Pregnant || p.Age < 5 {
				hasEligiblePerson = true
				break
			}
		}
		if !hasEligiblePerson {
			return false
		}
		return withinLimit(wicThresholds, len(a.Person), a.IncomeHouseholdTotalYearly)
	},
}

// Yearly income limits for the Commodity Supplemental Food Program.
var csfpThresholds = map[int]float64{
	1: 19578, 2: 26572, 3: 33566, 4: 40560,
	5: 47554, 6: 54548, 7: 61542, 8: 68536,
}

// S2R027 CSFP: senior aged 60+ plus the income test.
var ruleCSFP = Rule{
	Code:        "S2R027",
	Description: "Commodity Supplemental Food Program (CSFP) (NYS DOH) - Food assistance for seniors",
	Eligible: func(a *Aggregate) bool {
		hasSenior := false
		for _, p := range a.Person {
			if p.Age >= 60 {
				hasSenior = true
				break
			}
		}
		if !hasSenior {
			return false
		}
		return withinLimit(csfpThresholds, len(a.Person), a.IncomeHouseholdTotalYearly)
	},
}

// S2R056 Community Food Connection: universal access.
var ruleCommunityFoodConnection = Rule{
	Code:        "S2R056",
	Description: "Community Food Connection (CFC) (HRA) - Food assistance and community resources",
	Eligible: func(a *Aggregate) bool {
		return true
	},
}
