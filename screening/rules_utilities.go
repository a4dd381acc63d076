package screening

// Utility and connectivity assistance programs.

// hasVulnerableMember reports whether anyone is 6 or under, 60 or over,
// disabled, or blind. Shared by the heating and cooling benefits.
func hasVulnerableMember(a *Aggregate) bool {
	for _, p := range a.Person {
		if p.Age <= 6 || p.Age >= 60 || p.Disabled || p.Blind {
			return true
		}
	}
	return false
}

// Monthly adults' income limits for Heating Assistance.
var heatingThresholds = map[int]float64{
	1: 3322, 2: 4345, 3: 5367, 4: 6390,
	5: 7412, 6: 8434, 7: 8626, 8: 8818,
}

// S2R019 Heating Assistance: a vulnerable member, then Cash Assistance
// or the adults' monthly income test.
var ruleHeatingAssistance = Rule{
	Code:        "S2R019",
	Description: "Heating Assistance - Help with heating costs for vulnerable households",
	Eligible: func(a *Aggregate) bool {
		if !hasVulnerableMember(a) {
			return false
		}
		if a.IncomeHouseholdHasCashAssistance {
			return true
		}
		return withinLimit(heatingThresholds, len(a.Person), a.IncomeAdultsTotalMonthly)
	},
}

// Monthly income limits for the Cooling Assistance Benefit.
var coolingThresholds = map[int]float64{
	1: 3035, 2: 3970, 3: 4904, 4: 5838,
	5: 6772, 6: 7706, 7: 7881, 8: 8056,
}

// S2R033 Cooling Assistance Benefit: a vulnerable member, then Cash
// Assistance, single-member SSI, or the monthly income test.
var ruleCoolingAssistance = Rule{
	Code:        "S2R033",
	Description: "Cooling Assistance Benefit (HRA) - Help with cooling costs for vulnerable households",
	Eligible: func(a *Aggregate) bool {
		if !hasVulnerableMember(a) {
			return false
		}
		if a.IncomeHouseholdHasCashAssistance {
			return true
		}
		if len(a.Person) == 1 && a.IncomeHouseholdHasSSI {
			return true
		}
		return withinLimit(coolingThresholds, len(a.Person), a.IncomeHouseholdTotalMonthly)
	},
}

// Yearly income limits for Lifeline.
var lifelineThresholds = map[int]float64{
	1: 20331, 2: 27594, 3: 34857, 4: 42120,
	5: 49383, 6: 56646, 7: 63909, 8: 71172,
}

// S2R043 Lifeline: Medicaid, qualifying government benefits, NYCHA
// residence, or the income test.
var ruleLifeline = Rule{
	Code:        "S2R043",
	Description: "Lifeline - Discounted phone service for low-income households",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.BenefitsMedicaid || p.BenefitsMedicaidDisability {
				return true
			}
		}
		if a.IncomeHouseholdHasBenefit {
			return true
		}
		h := a.Household[0]
		if h.LivingRenting && h.LivingRentalType == NYCHA {
			return true
		}
		return withinLimit(lifelineThresholds, len(a.Person), a.IncomeHouseholdTotalYearly)
	},
}

// S2R053 Affordable Connectivity Program: closed to new applications
// as of February 8, 2024.
var ruleAffordableConnectivity = Rule{
	Code:        "S2R053",
	Description: "Affordable Connectivity Program - Internet service discount (Program closed as of Feb 8, 2024)",
	Eligible: func(a *Aggregate) bool {
		return false
	},
}
