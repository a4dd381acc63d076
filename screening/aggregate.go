package screening

// frequencyToMonthly converts any frequency to a monthly scalar. The
// literal factor values are part of the service contract; yearly amounts
// are always derived as monthly*12 so the two stay consistent.
var frequencyToMonthly = map[Frequency]float64{
	Weekly:      4.3333333333333,
	Biweekly:    2.166666666667,
	Semimonthly: 2.0,
	Monthly:     1.0,
	Yearly:      1.0 / 12.0,
}

// toMonthly normalizes an amount at the given frequency to a monthly value.
func toMonthly(amount float64, freq Frequency) float64 {
	factor, ok := frequencyToMonthly[freq]
	if !ok {
		factor = 1.0
	}
	return amount * factor
}

// toYearly normalizes through the monthly value, never directly.
func toYearly(amount float64, freq Frequency) float64 {
	return toMonthly(amount, freq) * 12.0
}

// nuclearTypes is the nuclear family: head of household, spouse,
// children and stepchildren. The same set doubles as the income
// carve-out for the "adults and children" calculations.
var nuclearTypes = map[HouseholdMemberType]bool{
	HeadOfHousehold: true,
	Spouse:          true,
	Child:           true,
	StepChild:       true,
}

// childTypes are children and stepchildren only.
var childTypes = map[HouseholdMemberType]bool{
	Child:     true,
	StepChild: true,
}

// isyExcludedTypes are removed from the "income for screening" subtotals.
var isyExcludedTypes = map[IncomeType]bool{
	ChildSupportIncome: true,
	CashAssistance:     true,
	SSSurvivor:         true,
	SSI:                true,
	Unemployment:       true,
}

// caIncomeTypes is the fixed set counted toward cash-assistance income.
// Boarder appears here even though it is carved out of earned income
// elsewhere; that mirrors the program's budgeting worksheet.
var caIncomeTypes = map[IncomeType]bool{
	Alimony: true, Boarder: true, CashAssistance: true, ChildSupportIncome: true,
	Gifts: true, Investment: true, Pension: true, RentalIncome: true,
	SelfEmployment: true, SSDependent: true, SSDisability: true,
	SSRetirement: true, SSSurvivor: true, SSI: true, Unemployment: true,
	VeteranIncome: true, Wages: true, WorkersComp: true,
}

// caWorkExpenseDeduction is subtracted per employed person from the
// cash-assistance monthly income.
const caWorkExpenseDeduction = 150.0

// Aggregate is the immutable bundle of derived values the program rules
// consume. Per-person maps are keyed by the person's zero-based position
// in the request. Built once per request by NewAggregate; rules must
// treat it as read-only.
type Aggregate struct {
	*Request

	// Indexes of the head of household and spouse in Person, or -1.
	HeadIndex   int
	SpouseIndex int

	// Household composition.
	MembersNuclearOnly               int
	FosterChildren                   int
	MembersPregnant                  int
	MembersPregnantNotFoster         int
	MembersPlusPregnant              int
	MembersPlusPregnantMinusFoster   int
	ChildrenStudentBlindDisabledEITC int
	ChildCareVoucherHouseholdMembers int
	HouseholdAllAdults               bool
	HeadOfHouseholdMarried           bool

	// Per-person income maps.
	IncomePersonWageSelfEmploymentMonthly        map[int]float64
	IncomePersonWageSelfEmploymentBoarderMonthly map[int]float64
	IncomePersonEarnedYearly                     map[int]float64
	IncomePersonInvestmentYearly                 map[int]float64
	IncomePersonGiftsMonthly                     map[int]float64
	IncomePersonMonthly                          map[int]float64
	IncomePersonYearly                           map[int]float64
	IncomePersonISYMonthly                       map[int]float64
	IncomePersonISYYearly                        map[int]float64
	IncomePersonSESMonthly                       map[int]float64

	// Household income scalars.
	IncomeHouseholdTotalMonthly              float64
	IncomeHouseholdTotalYearly               float64
	IncomeHouseholdTotalMonthlyLessFoster    float64
	IncomeHouseholdTotalMonthlyLessGifts     float64
	IncomeHouseholdWageSelfEmploymentMonthly float64
	IncomeHouseholdUnearnedMonthly           float64
	IncomeHouseholdBoarderMonthly            float64
	IncomeHouseholdNuclearISYYearly          float64
	IncomeHouseholdMonthlyCA                 float64
	IncomeHouseholdMonthlyCAMinusWorkExpense float64
	IncomeHeadEarnedYearly                   float64
	IncomeHeadAndSpouseEarnedYearly          float64
	IncomeHeadAndSpouseSESMonthly            float64
	IncomeOwnersTotalYearly                  float64
	IncomeAdultsChildrenTotalMonthly         float64
	IncomeChildCareVoucherTotalMonthly       float64
	IncomeAdultsTotalMonthly                 float64

	// Household income flags.
	IncomeHouseholdHasCashAssistance bool
	IncomeHouseholdHasUI             bool
	IncomeHouseholdHasBenefit        bool
	IncomeHouseholdHasSSI            bool

	// Household expense totals and flags.
	ExpenseHouseholdChildDependentCareMonthly float64
	ExpenseHouseholdMedicalMonthly            float64
	ExpenseHouseholdRentMortgageMonthly       float64
	ExpenseHouseholdRentMonthly               float64
	ExpenseHouseholdChildSupportMonthly       float64
	ExpenseHouseholdHasHeating                bool
	ExpenseHouseholdHasDependentCare          bool
	ExpenseHouseholdHasChildOrDependentCare   bool
}

// NewAggregate derives the full aggregate bundle from a validated
// request in a single deterministic pass. It never fails: missing
// optional fields contribute zero.
func NewAggregate(r *Request) *Aggregate {
	persons := r.Person

	a := &Aggregate{
		Request:     r,
		HeadIndex:   -1,
		SpouseIndex: -1,

		IncomePersonWageSelfEmploymentMonthly:        make(map[int]float64, len(persons)),
		IncomePersonWageSelfEmploymentBoarderMonthly: make(map[int]float64, len(persons)),
		IncomePersonEarnedYearly:                     make(map[int]float64, len(persons)),
		IncomePersonInvestmentYearly:                 make(map[int]float64, len(persons)),
		IncomePersonGiftsMonthly:                     make(map[int]float64, len(persons)),
		IncomePersonMonthly:                          make(map[int]float64, len(persons)),
		IncomePersonYearly:                           make(map[int]float64, len(persons)),
		IncomePersonISYMonthly:                       make(map[int]float64, len(persons)),
		IncomePersonISYYearly:                        make(map[int]float64, len(persons)),
		IncomePersonSESMonthly:                       make(map[int]float64, len(persons)),
	}

	for i := range persons {
		switch persons[i].HouseholdMemberType {
		case HeadOfHousehold:
			if a.HeadIndex < 0 {
				a.HeadIndex = i
			}
		case Spouse:
			if a.SpouseIndex < 0 {
				a.SpouseIndex = i
			}
		}
	}

	a.HeadOfHouseholdMarried = a.SpouseIndex >= 0

	// Composition counts.
	allAdults := true
	for _, p := range persons {
		if nuclearTypes[p.HouseholdMemberType] {
			a.MembersNuclearOnly++
		}
		if p.HouseholdMemberType == FosterChild {
			a.FosterChildren++
		}
		if p.Pregnant {
			a.MembersPregnant++
			if p.HouseholdMemberType != FosterChild {
				a.MembersPregnantNotFoster++
			}
		}
		if childTypes[p.HouseholdMemberType] {
			if p.Age < 19 || (p.Age < 24 && p.Student) || p.Blind || p.Disabled {
				a.ChildrenStudentBlindDisabledEITC++
			}
		}
		if p.Age < 18 {
			allAdults = false
		}
	}
	total := len(persons)
	a.MembersPlusPregnant = total + a.MembersPregnant
	a.MembersPlusPregnantMinusFoster = total + a.MembersPregnant - a.FosterChildren
	a.ChildCareVoucherHouseholdMembers = total - a.FosterChildren
	a.HouseholdAllAdults = allAdults

	// Per-person income pass.
	for i, p := range persons {
		var wageSelfEmp, boarder, giftsMonthly, totalMonthly float64
		var investmentYearly float64
		var isyMonthly, sesMonthly float64

		for _, inc := range p.Incomes {
			monthly := toMonthly(inc.Amount, inc.Frequency)
			totalMonthly += monthly

			switch inc.Type {
			case Wages, SelfEmployment:
				wageSelfEmp += monthly
			case Boarder:
				boarder += monthly
			case Investment, RentalIncome:
				investmentYearly += toYearly(inc.Amount, inc.Frequency)
			case Gifts:
				giftsMonthly += monthly
			}

			if !isyExcludedTypes[inc.Type] {
				isyMonthly += monthly
			}

			// Social Security retirement and survivor income counts
			// at 75% in the SES subtotal.
			if inc.Type == SSRetirement || inc.Type == SSSurvivor {
				sesMonthly += monthly * 0.75
			} else {
				sesMonthly += monthly
			}
		}

		a.IncomePersonWageSelfEmploymentMonthly[i] = wageSelfEmp
		a.IncomePersonWageSelfEmploymentBoarderMonthly[i] = wageSelfEmp + boarder
		a.IncomePersonEarnedYearly[i] = wageSelfEmp * 12.0
		a.IncomePersonInvestmentYearly[i] = investmentYearly
		a.IncomePersonGiftsMonthly[i] = giftsMonthly
		a.IncomePersonMonthly[i] = totalMonthly
		a.IncomePersonYearly[i] = totalMonthly * 12.0
		a.IncomePersonISYMonthly[i] = isyMonthly
		a.IncomePersonISYYearly[i] = isyMonthly * 12.0
		a.IncomePersonSESMonthly[i] = sesMonthly
	}

	// Household totals.
	for i := range persons {
		a.IncomeHouseholdTotalMonthly += a.IncomePersonMonthly[i]
		a.IncomeHouseholdWageSelfEmploymentMonthly += a.IncomePersonWageSelfEmploymentMonthly[i]
		a.IncomeHouseholdTotalMonthlyLessGifts += a.IncomePersonMonthly[i] - a.IncomePersonGiftsMonthly[i]
	}
	a.IncomeHouseholdTotalYearly = a.IncomeHouseholdTotalMonthly * 12.0

	for i, p := range persons {
		if p.HouseholdMemberType != FosterChild {
			a.IncomeHouseholdTotalMonthlyLessFoster += a.IncomePersonMonthly[i]
			a.IncomeChildCareVoucherTotalMonthly += a.IncomePersonMonthly[i]
		}
		if nuclearTypes[p.HouseholdMemberType] {
			a.IncomeHouseholdNuclearISYYearly += a.IncomePersonISYYearly[i]
			a.IncomeAdultsChildrenTotalMonthly += a.IncomePersonMonthly[i]
		}
		if p.LivingOwnerOnDeed {
			a.IncomeOwnersTotalYearly += a.IncomePersonYearly[i]
		}
	}

	// Adults total = household total minus children's earned income.
	a.IncomeAdultsTotalMonthly = a.IncomeHouseholdTotalMonthly
	for i, p := range persons {
		if childTypes[p.HouseholdMemberType] {
			a.IncomeAdultsTotalMonthly -= a.IncomePersonWageSelfEmploymentMonthly[i]
		}
	}

	// Unearned, boarder, cash-assistance and flag pass over raw incomes.
	employedPersons := 0
	for _, p := range persons {
		hasEmployment := false
		for _, inc := range p.Incomes {
			monthly := toMonthly(inc.Amount, inc.Frequency)

			switch inc.Type {
			case Wages, SelfEmployment:
				hasEmployment = true
			case Boarder:
				a.IncomeHouseholdBoarderMonthly += monthly
			}
			if inc.Type != Wages && inc.Type != SelfEmployment && inc.Type != Boarder {
				a.IncomeHouseholdUnearnedMonthly += monthly
			}
			if caIncomeTypes[inc.Type] {
				a.IncomeHouseholdMonthlyCA += monthly
			}

			switch inc.Type {
			case CashAssistance:
				a.IncomeHouseholdHasCashAssistance = true
			case Unemployment:
				a.IncomeHouseholdHasUI = true
			case SSI:
				a.IncomeHouseholdHasSSI = true
				a.IncomeHouseholdHasBenefit = true
			case VeteranIncome, SSRetirement, SSDisability, SSSurvivor:
				a.IncomeHouseholdHasBenefit = true
			}
		}
		if hasEmployment {
			employedPersons++
		}
	}
	a.IncomeHouseholdMonthlyCAMinusWorkExpense =
		a.IncomeHouseholdMonthlyCA - caWorkExpenseDeduction*float64(employedPersons)

	// Head and spouse incomes. A missing spouse contributes zero.
	if a.HeadIndex >= 0 {
		a.IncomeHeadEarnedYearly = a.IncomePersonEarnedYearly[a.HeadIndex]
		a.IncomeHeadAndSpouseSESMonthly = a.IncomePersonSESMonthly[a.HeadIndex]
	}
	a.IncomeHeadAndSpouseEarnedYearly = a.IncomeHeadEarnedYearly
	if a.SpouseIndex >= 0 {
		a.IncomeHeadAndSpouseEarnedYearly += a.IncomePersonEarnedYearly[a.SpouseIndex]
		a.IncomeHeadAndSpouseSESMonthly += a.IncomePersonSESMonthly[a.SpouseIndex]
	}

	// Expense pass.
	for _, p := range persons {
		for _, exp := range p.Expenses {
			monthly := toMonthly(exp.Amount, exp.Frequency)

			if exp.Type == ChildCare || exp.Type == DependentCare {
				a.ExpenseHouseholdChildDependentCareMonthly += monthly
			}
			if exp.Type == Medical {
				a.ExpenseHouseholdMedicalMonthly += monthly
			}
			if exp.Type == Rent || exp.Type == Mortgage {
				a.ExpenseHouseholdRentMortgageMonthly += monthly
			}
			if exp.Type == Rent {
				a.ExpenseHouseholdRentMonthly += monthly
			}
			if exp.Type == ChildSupportExpense {
				a.ExpenseHouseholdChildSupportMonthly += monthly
			}
			if exp.Type == Heating {
				a.ExpenseHouseholdHasHeating = true
			}
			if exp.Type == DependentCare {
				a.ExpenseHouseholdHasDependentCare = true
			}
		}
	}
	a.ExpenseHouseholdHasChildOrDependentCare = a.ExpenseHouseholdChildDependentCareMonthly > 0

	return a
}
