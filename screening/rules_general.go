package screening

// Cash assistance, employment, and general city services.

// Monthly Cash Assistance thresholds for households with a child aged 18
// or under or a pregnant member. Extrapolated past 8 at $119.50/member.
var caChildPregnantThresholds = map[int]float64{
	1: 460.10, 2: 574.50, 3: 789.00, 4: 951.70,
	5: 1119.70, 6: 1238.20, 7: 1357.70, 8: 1455.20,
}

// Monthly Cash Assistance thresholds for all other households.
// Extrapolated past 8 at $115.50/member.
var caGeneralThresholds = map[int]float64{
	1: 398.10, 2: 541.50, 3: 675.00, 4: 813.70,
	5: 955.70, 6: 1063.20, 7: 1214.70, 8: 1330.20,
}

func caThreshold(thresholds map[int]float64, size int, step float64) float64 {
	if size > 8 {
		return thresholds[8] + float64(size-8)*step
	}
	if limit, ok := thresholds[size]; ok {
		return limit
	}
	return thresholds[1]
}

// S2R010 Cash Assistance: countable monthly income after the work
// expense deduction strictly below the composition-dependent threshold.
var ruleCashAssistance = Rule{
	Code:        "S2R010",
	Description: "Cash Assistance (HRA) - Financial assistance program with income-based eligibility",
	Eligible: func(a *Aggregate) bool {
		size := len(a.Person) + a.MembersPregnant

		hasChildOrPregnant := false
		for _, p := range a.Person {
			if p.Age <= 18 || p.Pregnant {
				hasChildOrPregnant = true
				break
			}
		}

		var threshold float64
		if hasChildOrPregnant {
			threshold = caThreshold(caChildPregnantThresholds, size, 119.50)
		} else {
			threshold = caThreshold(caGeneralThresholds, size, 115.50)
		}
		return a.IncomeHouseholdMonthlyCAMinusWorkExpense < threshold
	},
}

// S2R021 NYS Unemployment Insurance: an unemployed person who worked in
// the last 18 months.
var ruleUnemploymentInsurance = Rule{
	Code:        "S2R021",
	Description: "New York State Unemployment Insurance (NYS Department of Labor) - Financial assistance for those who lost their job",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Unemployed && p.UnemployedWorkedLast18Months {
				return true
			}
		}
		return false
	},
}

// Yearly income limits for the Older Adult Employment Program.
// Extrapolated past 8 at $6,725 per additional member.
var olderAdultEmploymentThresholds = map[int]float64{
	1: 18825, 2: 25550, 3: 32275, 4: 39000,
	5: 45725, 6: 52450, 7: 59175, 8: 65900,
}

// S2R025 Older Adult Employment Program: an unemployed person aged 55+
// plus the income test over members-plus-pregnant.
var ruleOlderAdultEmployment = Rule{
	Code:        "S2R025",
	Description: "Older Adult Employment Program (DFTA) - Employment assistance for seniors aged 55+",
	Eligible: func(a *Aggregate) bool {
		hasEligibleSenior := false
		for _, p := range a.Person {
			if p.Age >= 55 && p.Unemployed {
				hasEligibleSenior = true
				break
			}
		}
		if !hasEligibleSenior {
			return false
		}
		size := len(a.Person) + a.MembersPregnant
		limit := olderAdultEmploymentThresholds[1]
		if size > 8 {
			limit = olderAdultEmploymentThresholds[8] + float64(size-8)*6725
		} else if l, ok := olderAdultEmploymentThresholds[size]; ok {
			limit = l
		}
		return a.IncomeHouseholdTotalYearly <= limit
	},
}

// S2R026 Adult Education: any person aged 18 or older.
var ruleAdultEducation = Rule{
	Code:        "S2R026",
	Description: "Adult Education - Educational programs for adults",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age >= 18 {
				return true
			}
		}
		return false
	},
}

// S2R032 IDNYC: any person aged 10 or older.
var ruleIDNYC = Rule{
	Code:        "S2R032",
	Description: "IDNYC (HRA) - Free municipal ID card for NYC residents",
	Eligible: func(a *Aggregate) bool {
		for _, p := range a.Person {
			if p.Age >= 10 {
				return true
			}
		}
		return false
	},
}

// Yearly income limits for Fair Fares NYC.
var fairFaresThresholds = map[int]float64{
	1: 21837, 2: 29638, 3: 37439, 4: 45240,
	5: 53041, 6: 60842, 7: 68643, 8: 76444,
}

// S2R034 Fair Fares NYC: an adult aged 18-64 plus the income test.
var ruleFairFares = Rule{
	Code:        "S2R034",
	Description: "Fair Fares NYC - Half-price MetroCards for low-income New Yorkers",
	Eligible: func(a *Aggregate) bool {
		hasEligibleAdult := false
		for _, p := range a.Person {
			if p.Age >= 18 && p.Age <= 64 {
				hasEligibleAdult = true
				break
			}
		}
		if !hasEligibleAdult {
			return false
		}
		return withinLimit(fairFaresThresholds, len(a.Person), a.IncomeHouseholdTotalYearly)
	},
}
