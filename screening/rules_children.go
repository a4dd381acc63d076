package screening

// Early childhood and child care programs.

// Monthly income limits for the Infants & Toddlers pathways, keyed by
// household size including pregnant members. Sizes above 8 use the
// size-8 entry; sizes below 2 have no entry and fall through to zero.
var infantsToddlersThresholds = map[int]float64{
	2: 5624, 3: 6948, 4: 8271, 5: 9594, 6: 10918, 7: 11166, 8: 11414,
}

func infantsToddlersLimit(size int) float64 {
	if size > 8 {
		return infantsToddlersThresholds[8]
	}
	if size < 2 {
		return 0
	}
	if limit, ok := infantsToddlersThresholds[size]; ok {
		return limit
	}
	return infantsToddlersThresholds[2]
}

// S2R003 Infants & Toddlers: early intervention pathways for children
// under 3 - foster status, head/spouse on SSI or Cash Assistance, or an
// income test that differs for nuclear children versus other members.
var ruleInfantsToddlers = Rule{
	Code:        "S2R003",
	Description: "Infants & Toddlers (DOE) - Early intervention services for children under 3 years old",
	Eligible: func(a *Aggregate) bool {
		headOrSpouseHasBenefits := func() bool {
			for _, p := range a.Person {
				if p.HouseholdMemberType != HeadOfHousehold && p.HouseholdMemberType != Spouse {
					continue
				}
				for _, inc := range p.Incomes {
					if inc.Type == SSI || inc.Type == CashAssistance {
						return true
					}
				}
			}
			return false
		}

		for i, p := range a.Person {
			if p.Age >= 3 {
				continue
			}
			if p.HouseholdMemberType == FosterChild {
				return true
			}
			if headOrSpouseHasBenefits() {
				return true
			}
			if childTypes[p.HouseholdMemberType] {
				size := len(a.Person) + a.MembersPregnant
				if a.IncomeAdultsChildrenTotalMonthly <= infantsToddlersLimit(size) {
					return true
				}
			}
			if !childTypes[p.HouseholdMemberType] {
				if a.IncomePersonMonthly[i] <= 4301.0 {
					return true
				}
			}
		}
		return false
	},
}

// Yearly income limits shared by Head Start and the youth program
// income pathways (100% of the federal poverty guideline).
var povertyGuidelineYearly = map[int]float64{
	1: 15060, 2: 20440, 3: 25820, 4: 31200,
	5: 36580, 6: 41960, 7: 47340, 8: 52720,
}

// S2R008 Head Start: child aged 3-4 under the poverty guideline, or a
// household on Cash Assistance/SSI, or foster children.
var ruleHeadStart = Rule{
	Code:        "S2R008",
	Description: "Head Start (DOE) - Free early childhood education for children aged 3-4",
	Eligible: func(a *Aggregate) bool {
		hasEligibleChild := false
		for _, p := range a.Person {
			if p.Age > 2 && p.Age < 5 {
				hasEligibleChild = true
				break
			}
		}
		if hasEligibleChild &&
			withinLimit(povertyGuidelineYearly, len(a.Person), a.IncomeHouseholdTotalYearly) {
			return true
		}
		if a.IncomeHouseholdHasCashAssistance || a.IncomeHouseholdHasSSI {
			return true
		}
		return a.FosterChildren > 0
	},
}

// S2R016 Pre-K for All: any child aged 3 or 4.
var rulePreKForAll = Rule{
	Code:        "S2R016",
	Description: "Pre-K for All - Free pre-kindergarten for 4-year-olds",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age >= 3 && p.Age < 5 {
				return true
			}
		}
		return false
	},
}

// S2R023 Child Health Plus: any person under 19.
var ruleChildHealthPlus = Rule{
	Code:        "S2R023",
	Description: "Child Health Plus - Low-cost health insurance for children",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age < 19 {
				return true
			}
		}
		return false
	},
}

// Monthly income limits for Child Care Voucher, keyed by household size
// excluding foster children.
var childCareVoucherThresholds = map[int]float64{
	2: 6156, 3: 7604, 4: 9053, 5: 10501, 6: 11949, 7: 12221, 8: 12493,
}

// S2R040 Child Care Voucher: an eligible dependent plus an income test
// over the foster-excluded household.
var ruleChildCareVoucher = Rule{
	Code:        "S2R040",
	Description: "Child Care Voucher (ACS) - Financial assistance for child care expenses",
	Eligible: func(a *Aggregate) bool {
		hasEligibleDependent := false
		for _, p := range a.Person {
			if p.Age <= 12 {
				hasEligibleDependent = true
				break
			}
			if p.Age <= 17 && (p.Disabled || p.Blind) {
				hasEligibleDependent = true
				break
			}
			if p.Age == 18 && p.StudentFulltime && (p.Disabled || p.Blind) {
				hasEligibleDependent = true
				break
			}
		}
		if !hasEligibleDependent {
			return false
		}
		return withinLimit(childCareVoucherThresholds,
			a.ChildCareVoucherHouseholdMembers, a.IncomeChildCareVoucherTotalMonthly)
	},
}

// S2R085 3-K for All: any person exactly 3 years old.
var ruleThreeKForAll = Rule{
	Code:        "S2R085",
	Description: "3-K for all (DOE) - Universal pre-kindergarten program for 3-year-old children",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age == 3 {
				return true
			}
		}
		return false
	},
}
