package screening

// Youth education and employment programs.

// S2R009 COMPASS NYC: any student aged 5-21.
var ruleAfterSchoolSystem = Rule{
	Code:        "S2R009",
	Description: "Comprehensive After School System of NYC (COMPASS NYC) (DYCD) - After school programs for students",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age >= 5 && p.Age <= 21 && p.Student {
				return true
			}
		}
		return false
	},
}

// youthCircumstances is the shared disjunction used by the DYCD youth
// programs: qualifying youth in the household plus any of shelter
// residence, foster care, disability, pregnancy or parenthood,
// household Cash Assistance/SSI, or income under the poverty guideline.
func youthCircumstances(a *Aggregate, youth []Person) bool {
	if len(youth) == 0 {
		return false
	}

	if a.Household[0].LivingShelter {
		return true
	}

	for _, y := range youth {
		if y.HouseholdMemberType == FosterChild {
			return true
		}
		if y.HouseholdMemberType == HeadOfHousehold {
			for _, p := range a.Person {
				if p.HouseholdMemberType == FosterParent {
					return true
				}
			}
		}
	}

	for _, y := range youth {
		if y.Disabled || y.Blind {
			return true
		}
	}

	for _, y := range youth {
		if y.Pregnant {
			return true
		}
		if y.HouseholdMemberType == HeadOfHousehold {
			for _, p := range a.Person {
				if childTypes[p.HouseholdMemberType] {
					return true
				}
			}
		}
	}

	if a.IncomeHouseholdHasCashAssistance || a.IncomeHouseholdHasSSI {
		return true
	}

	return withinLimit(povertyGuidelineYearly, len(a.Person), a.IncomeHouseholdTotalYearly)
}

// S2R028 Learn & Earn: youth aged 14-21 under the shared circumstances.
var ruleLearnEarn = Rule{
	Code:        "S2R028",
	Description: "Learn & Earn (DYCD) - Educational and employment programs for youth",
	Eligible: func(a *Aggregate) bool {
		var youth []Person
		for _, p := range a.Person {
			if p.Age >= 14 && p.Age <= 21 {
				youth = append(youth, p)
			}
		}
		return youthCircumstances(a, youth)
	},
}

// S2R030 Summer Youth Employment Program: any person aged 14-24.
var ruleSummerYouthEmployment = Rule{
	Code:        "S2R030",
	Description: "Summer Youth Employment Program (SYEP) (DYCD) - Summer employment opportunities for youth",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age >= 14 && p.Age <= 24 {
				return true
			}
		}
		return false
	},
}

// S2R036 Youth Workforce Development: unemployed out-of-school youth
// aged 16-24 under the shared circumstances.
var ruleYouthWorkforce = Rule{
	Code:        "S2R036",
	Description: "Youth Workforce Development - Job training for unemployed youth not in school",
	Eligible: func(a *Aggregate) bool {
		var youth []Person
		for _, p := range a.Person {
			if p.Age >= 16 && p.Age <= 24 && !p.Student && p.Unemployed {
				youth = append(youth, p)
			}
		}
		return youthCircumstances(a, youth)
	},
}
