package screening

// Health coverage and maternal health programs.

// S2R011 Qualified Health Plans: universal access to the marketplace.
var ruleQualifiedHealthPlans = Rule{
	Code:        "S2R011",
	Description: "Qualified Health Plans (NY State of Health) - Healthcare marketplace plans",
	Eligible: func(a *Aggregate) bool {
		return true
	},
}

// Monthly income limits for the Nurse-Family Partnership, keyed by
// household size including pregnant members.
var nfpThresholds = map[int]float64{
	2: 2960, 3: 3733, 4: 4606, 5: 5280, 6: 6053, 7: 6826, 8: 7599,
}

// S2R029 Nurse-Family Partnership: a pregnant member plus the income
// test over members-plus-pregnant.
var ruleNurseFamilyPartnership = Rule{
	Code:        "S2R029",
	Description: "Nurse-Family Partnership (DOHMH) - Prenatal and postnatal support for first-time mothers",
	Eligible: func(a *Aggregate) bool {
		hasPregnant := false
		for _, p := range a.Person {
			if p.Pregnant {
				hasPregnant = true
				break
			}
		}
		if !hasPregnant {
			return false
		}
		return withinLimit(nfpThresholds, a.MembersPlusPregnant, a.IncomeHouseholdTotalMonthly)
	},
}

// Monthly income limits for NYC Care.
var nycCareThresholds = map[int]float64{
	1: 2799, 2: 3799, 3: 4799, 4: 5598, 5: 6798, 6: 7798, 7: 8798, 8: 9798,
}

// S2R031 NYC Care: a member without Medicaid plus the income test.
var ruleNYCCare = Rule{
	Code:        "S2R031",
	Description: "NYC Care - Low-cost healthcare for those without insurance",
	Eligible: func(a *Aggregate) bool {
		hasUninsured := false
		for _, p := range a.Person {
			if !p.BenefitsMedicaid && !p.BenefitsMedicaidDisability {
				hasUninsured = true
				break
			}
		}
		if !hasUninsured {
			return false
		}
		return withinLimit(nycCareThresholds, len(a.Person), a.IncomeHouseholdTotalMonthly)
	},
}

// S2R037 Home Care Services Program: any member with Medicaid.
var ruleHomeCareServices = Rule{
	Code:        "S2R037",
	Description: "Home Care Services Program (HRA) - In-home care services for individuals with Medicaid",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.BenefitsMedicaid {
				return true
			}
		}
		return false
	},
}

// Yearly income limits for Medicaid for Pregnant Women.
var medicaidPregnantThresholds = map[int]float64{
	1: 33584, 2: 45581, 3: 57579, 4: 69576,
	5: 81573, 6: 93571, 7: 105568, 8: 117566,
}

// S2R038 Medicaid for Pregnant Women: pregnant member plus income test.
var ruleMedicaidPregnantWomen = Rule{
	Code:        "S2R038",
	Description: "Medicaid for Pregnant Women (HRA) - Healthcare coverage for pregnant women",
	Eligible: func(a *Aggregate) bool {
		hasPregnant := false
		for _, p := range a.Person {
			if p.Pregnant {
				hasPregnant = true
				break
			}
		}
		if !hasPregnant {
			return false
		}
		return withinLimit(medicaidPregnantThresholds, len(a.Person), a.IncomeHouseholdTotalYearly)
	},
}

// S2R046 COVID-19 Vaccines: any person aged 5 or older.
var ruleCOVID19Vaccines = Rule{
	Code:        "S2R046",
	Description: "COVID-19 Vaccines (DOHMH) - Free COVID-19 vaccines and boosters for all ages",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age >= 5 {
				return true
			}
		}
		return false
	},
}

// S2R047 NYC NY Connects: a blind or disabled member, a member with
// Medicaid disability benefits, or Disability Medicaid income.
var ruleNYConnects = Rule{
	Code:        "S2R047",
	Description: "NYC NY Connects (DFTA) - Information and assistance services for older adults and people with disabilities",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Blind || p.Disabled || p.BenefitsMedicaidDisability {
				return true
			}
		}
		for _, p := range a.Person {
			for _, inc := range p.Incomes {
				if inc.Type == DisabilityMedicaid {
					return true
				}
			}
		}
		return false
	},
}
