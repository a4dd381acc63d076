package screening

// Tax credit and financial counseling programs.

// S2R001 Child and Dependent Care Tax Credit: a qualifying dependent,
// care expenses, and earned income for the head (and spouse).
var ruleChildDependentCareTaxCredit = Rule{
	Code:        "S2R001",
	Description: "Child and Dependent Care Tax Credit (DCA/IRS) - Assistance with child or dependent care expenses",
	Eligible: func(a *Aggregate) bool {
		hasEligiblePerson := false
		for _, p := range a.Person {
			if p.Age < 13 || p.Disabled || p.Blind {
				hasEligiblePerson = true
				break
			}
		}
		if !hasEligiblePerson {
			return false
		}
		if !a.ExpenseHouseholdHasChildOrDependentCare {
			return false
		}
		return a.IncomeHeadAndSpouseEarnedYearly > 0
	},
}

// S2R004 Child Tax Credit: child under 17 and yearly income between
// $2,500 and a cap that depends on marital status.
var ruleChildTaxCredit = Rule{
	Code:        "S2R004",
	Description: "Child Tax Credit for households with children under 17",
	Eligible: func(a *Aggregate) bool {
		hasEligibleChild := false
		for _, p := range a.Person {
			if p.Age < 17 {
				hasEligibleChild = true
				break
			}
		}
		if !hasEligibleChild {
			return false
		}

		yearly := a.IncomeHouseholdTotalYearly
		if yearly < 2500 {
			return false
		}
		if a.HeadOfHouseholdMarried {
			return yearly <= 400000
		}
		return yearly <= 200000
	},
}

// EITC earned income ceilings by number of qualifying children.
var eitcMarriedThresholds = []float64{24210, 53120, 59478, 63398}
var eitcSingleThresholds = []float64{17640, 46560, 52918, 56838}

func eitcThreshold(table []float64, numChildren int) float64 {
	if numChildren > 3 {
		numChildren = 3
	}
	return table[numChildren]
}

// eitcIndividual checks the childless-filer pathway for household
// members other than the head and spouse.
func eitcIndividual(a *Aggregate) bool {
	for i, p := range a.Person {
		if p.HouseholdMemberType == HeadOfHousehold || p.HouseholdMemberType == Spouse {
			continue
		}
		if p.Age >= 25 && p.Age <= 64 {
			earned := a.IncomePersonEarnedYearly[i]
			if earned > 0 && earned <= 17640 {
				return true
			}
		}
	}
	return false
}

// S2R006 Earned Income Tax Credit: pathways by marital status, number
// of qualifying children, and earned income, capped by investment
// income. Childless filers must be 25-64.
var ruleEarnedIncomeTaxCredit = Rule{
	Code:        "S2R006",
	Description: "Earned Income Tax Credit (EITC) (DCA/IRS) - Tax credit based on marital status, children, and income",
	Eligible: func(a *Aggregate) bool {
		totalInvestment := 0.0
		for _, v := range a.IncomePersonInvestmentYearly {
			totalInvestment += v
		}
		if totalInvestment >= 11000 {
			return false
		}

		numChildren := a.ChildrenStudentBlindDisabledEITC

		if a.HeadIndex >= 0 {
			head := a.Person[a.HeadIndex]
			if a.HeadOfHouseholdMarried {
				combined := a.IncomeHeadAndSpouseEarnedYearly
				threshold := eitcThreshold(eitcMarriedThresholds, numChildren)

				if numChildren == 0 {
					spouse := a.Person[a.SpouseIndex]
					if !(head.Age >= 25 && head.Age <= 64) || !(spouse.Age >= 25 && spouse.Age <= 64) {
						return eitcIndividual(a)
					}
				}
				if combined > 0 && combined <= threshold {
					return true
				}
			} else {
				threshold := eitcThreshold(eitcSingleThresholds, numChildren)
				if numChildren == 0 && !(head.Age >= 25 && head.Age <= 64) {
					return eitcIndividual(a)
				}
				headEarned := a.IncomePersonEarnedYearly[a.HeadIndex]
				if headEarned > 0 && headEarned <= threshold {
					return true
				}
			}
		}

		return eitcIndividual(a)
	},
}

// S2R039 NYC Free Tax Prep: single filers to $59k, or households with a
// child or stepchild to $85k.
var ruleFreeTaxPrep = Rule{
	Code:        "S2R039",
	Description: "NYC Free Tax Prep (DCA) - Free tax preparation services for low-income households",
	Eligible: func(a *Aggregate) bool {
		if len(a.Person) == 1 {
			if a.IncomeHouseholdTotalYearly <= 59000 {
				return true
			}
		}
		if len(a.Person) > 1 {
			hasChildRelation := false
			for _, p := range a.Person {
				if childTypes[p.HouseholdMemberType] {
					hasChildRelation = true
					break
				}
			}
			if hasChildRelation && a.IncomeHouseholdTotalYearly <= 85000 {
				return true
			}
		}
		return false
	},
}

// S2R045 Financial Empowerment Centers: any adult.
var ruleFinancialEmpowermentCenters = Rule{
	Code:        "S2R045",
	Description: "Financial Empowerment Centers (DCWP) - Free financial counseling and tax preparation services",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age >= 18 {
				return true
			}
		}
		return false
	},
}
