package screening

// Housing, homeowner, and rental programs.

// S2R005 Rental Assistance: regulated rental types, an adult head on
// the lease with qualifying income, and yearly income at or below $50k.
var ruleRentalAssistance = Rule{
	Code:        "S2R005",
	Description: "Rental Assistance for specific housing types with income requirements",
	Eligible: func(a *Aggregate) bool {
		h := a.Household[0]
		if !h.LivingRenting {
			return false
		}
		switch h.LivingRentalType {
		case RentControlled, HDFC, MitchellLama, Section213:
		default:
			return false
		}
		if a.HeadIndex < 0 {
			return false
		}
		head := a.Person[a.HeadIndex]
		if head.Age < 18 || !head.LivingRentalOnLease {
			return false
		}

		// Cash assistance and SSI do not qualify the head here.
		qualifying := map[IncomeType]bool{
			Wages: true, SelfEmployment: true, Pension: true,
			SSRetirement: true, SSDisability: true, SSSurvivor: true,
			Unemployment: true, WorkersComp: true, VeteranIncome: true,
			RentalIncome: true, Investment: true, Alimony: true,
			ChildSupportIncome: true,
		}
		hasQualifying := false
		for _, inc := range head.Incomes {
			if qualifying[inc.Type] {
				hasQualifying = true
				break
			}
		}
		if !hasQualifying {
			return false
		}

		return a.IncomeHouseholdTotalYearly <= 50000
	},
}

// S2R012 STAR: homeowners with owners' income at or below $500k.
var ruleSTAR = Rule{
	Code:        "S2R012",
	Description: "STAR - Property tax relief for homeowners",
	Eligible: func(a *Aggregate) bool {
		if !a.Household[0].LivingOwner {
			return false
		}
		return a.IncomeOwnersTotalYearly <= 500000
	},
}

// Yearly income limits for the affordable housing program.
var housingProgramThresholds = map[int]float64{
	1: 54350, 2: 62150, 3: 69900, 4: 77650,
	5: 83850, 6: 90050, 7: 96300, 8: 102500,
}

// S2R013 NYC Housing Program: adult head of household plus income test.
var ruleHousingProgram = Rule{
	Code:        "S2R013",
	Description: "NYC Housing Program - Affordable housing assistance",
	Eligible: func(a *Aggregate) bool {
		hasAdultHead := false
		for _, p := range a.Person {
			if p.HouseholdMemberType == HeadOfHousehold && p.Age >= 18 {
				hasAdultHead = true
				break
			}
		}
		if !hasAdultHead {
			return false
		}
		return withinLimit(housingProgramThresholds, len(a.Person), a.IncomeHouseholdTotalYearly)
	},
}

// S2R014 Senior Citizen Homeowners' Exemption: owner household, owners'
// income at or below $58,399, and a 65+ owner on the deed.
var ruleSeniorHomeownersExemption = Rule{
	Code:        "S2R014",
	Description: "Senior Citizen Homeowners' Exemption (SCHE) (DOF) - Property tax exemption for senior homeowners",
	Eligible: func(a *Aggregate) bool {
		if !a.Household[0].LivingOwner {
			return false
		}
		if a.IncomeOwnersTotalYearly > 58399 {
			return false
		}
		for _, p := range a.Person {
			if p.LivingOwnerOnDeed && p.Age >= 65 {
				return true
			}
		}
		return false
	},
}

// S2R015 SCRIE: regulated rental types, a 62+ head on the lease, and a
// gifts-only yearly income metric at or below $50k. The metric is the
// source system's literal budget line: total yearly minus twelve times
// the gifts-excluded monthly total.
var ruleSCRIE = Rule{
	Code:        "S2R015",
	Description: "SCRIE - Senior Citizen Rent Increase Exemption for eligible rental types",
	Eligible: func(a *Aggregate) bool {
		h := a.Household[0]
		if !h.LivingRenting {
			return false
		}
		switch h.LivingRentalType {
		case RentControlled, HDFC, RentRegulatedHotel, MitchellLama, Section213:
		default:
			return false
		}
		if a.HeadIndex < 0 {
			return false
		}
		head := a.Person[a.HeadIndex]
		if head.Age < 62 || !head.LivingRentalOnLease {
			return false
		}
		return a.IncomeHouseholdTotalYearly-a.IncomeHouseholdTotalMonthlyLessGifts*12 <= 50000
	},
}

// S2R017 Disability/Blind Homeowner Exemption: owner household under
// the income cap with a disabled or blind owner on the deed, or an
// owner receiving SSI or SS Disability.
var ruleDisabilityHomeownerExemption = Rule{
	Code:        "S2R017",
	Description: "Disability/Blind Homeowner Exemption - Property tax relief for disabled/blind homeowners",
	Eligible: func(a *Aggregate) bool {
		if !a.Household[0].LivingOwner {
			return false
		}
		if a.IncomeOwnersTotalYearly > 58399 {
			return false
		}
		for _, p := range a.Person {
			if p.LivingOwnerOnDeed && (p.Disabled || p.Blind) {
				return true
			}
		}
		for _, p := range a.Person {
			if !p.LivingOwnerOnDeed {
				continue
			}
			for _, inc := range p.Incomes {
				if inc.Type == SSI || inc.Type == SSDisability {
					return true
				}
			}
		}
		return false
	},
}

// S2R018 Veterans' Property Tax Exemption: a veteran on the deed.
var ruleVeteransPropertyTaxExemption = Rule{
	Code:        "S2R018",
	Description: "Veterans' Property Tax Exemption (DOF) - Property tax exemption for veteran homeowners",
	Eligible: func(a *Aggregate) bool {
		if !a.Household[0].LivingOwner {
			return false
		}
		for _, p := range a.Person {
			if p.Veteran && p.LivingOwnerOnDeed {
				return true
			}
		}
		return false
	},
}

// S2R024 NYCHA Resident Employment Program: NYCHA rental with an adult.
var ruleNYCHAResidentEmployment = Rule{
	Code:        "S2R024",
	Description: "NYCHA Resident Employment Program - Job training for NYCHA residents",
	Eligible: func(a *Aggregate) bool {
		h := a.Household[0]
		if !(h.LivingRenting && h.LivingRentalType == NYCHA) {
			return false
		}
		for _, p := range a.Person {
			if p.Age >= 18 {
				return true
			}
		}
		return false
	},
}

// Member types that count as family relations for public housing.
var publicHousingFamilyTypes = map[HouseholdMemberType]bool{
	Spouse: true, Child: true, FosterChild: true, Parent: true,
	Grandparent: true, FosterParent: true, SisterBrother: true,
	DomesticPartner: true, StepChild: true, StepParent: true,
	StepSisterStepBrother: true,
}

// Yearly family income limits for public housing, sizes 2-8.
var publicHousingFamilyThresholds = map[int]float64{
	2: 99550, 3: 111950, 4: 124400, 5: 134350,
	6: 144300, 7: 154250, 8: 164200,
}

// S2R035 Public Housing: family households under size-indexed limits,
// or all-adult unrelated households with an individual under $87,100.
var rulePublicHousing = Rule{
	Code:        "S2R035",
	Description: "Public Housing (NYCHA) - Affordable housing for low and moderate income residents",
	Eligible: func(a *Aggregate) bool {
		hasFamilyRelations := false
		for _, p := range a.Person {
			if publicHousingFamilyTypes[p.HouseholdMemberType] {
				hasFamilyRelations = true
				break
			}
		}

		if hasFamilyRelations && a.HeadIndex >= 0 && a.Person[a.HeadIndex].Age >= 18 {
			hasMinorSpousePartner := false
			for _, p := range a.Person {
				if p.Age < 18 && (p.HouseholdMemberType == Spouse || p.HouseholdMemberType == DomesticPartner) {
					hasMinorSpousePartner = true
					break
				}
			}
			if !hasMinorSpousePartner &&
				withinLimit(publicHousingFamilyThresholds, len(a.Person), a.IncomeHouseholdTotalYearly) {
				return true
			}
		}

		if a.HouseholdAllAdults && !hasFamilyRelations {
			for i := range a.Person {
				if a.IncomePersonYearly[i] <= 87100 {
					return true
				}
			}
		}
		return false
	},
}

// S2R054 Big Apple Connect: NYCHA residents.
var ruleBigAppleConnect = Rule{
	Code:        "S2R054",
	Description: "Big Apple Connect (NYCHA) - Free internet service for NYCHA residents",
	Eligible: func(a *Aggregate) bool {
		h := a.Household[0]
		return h.LivingRenting && h.LivingRentalType == NYCHA
	},
}

// Yearly income limits for the housing lottery.
var housingConnectThresholds = map[int]float64{
	1: 179355, 2: 205095, 3: 230670, 4: 256245,
	5: 276705, 6: 297165, 7: 317790, 8: 338250,
}

// S2R055 NYC Housing Connect: an adult, cash on hand at or below
// $256,245, and the income test.
var ruleHousingConnect = Rule{
	Code:        "S2R055",
	Description: "NYC Housing Connect (HPD) - Affordable housing lottery and application portal",
	Eligible: func(a *Aggregate) bool {
		hasAdult := false
		for _, p := range a.Person {
			if p.Age >= 18 {
				hasAdult = true
				break
			}
		}
		if !hasAdult {
			return false
		}
		if cash := a.Household[0].CashOnHand; cash != nil && *cash > 256245 {
			return false
		}
		return withinLimit(housingConnectThresholds, len(a.Person), a.IncomeHouseholdTotalYearly)
	},
}
