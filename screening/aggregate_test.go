package screening

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff == 0 {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-6*scale
}

func singlePersonRequest(p Person) *Request {
	p.HouseholdMemberType = HeadOfHousehold
	return &Request{
		Household: []Household{{}},
		Person:    []Person{p},
	}
}

func TestNewAggregate_WeeklyFrequencyFactor(t *testing.T) {
	req := singlePersonRequest(Person{
		Age: 30,
		Incomes: []Income{
			{Amount: 100, Type: Wages, Frequency: Weekly},
		},
	})

	a := NewAggregate(req)

	wantMonthly := 100 * 4.3333333333333
	if !almostEqual(a.IncomeHouseholdTotalMonthly, wantMonthly) {
		t.Errorf("Monthly = %v, want %v", a.IncomeHouseholdTotalMonthly, wantMonthly)
	}
	if !almostEqual(a.IncomeHouseholdTotalYearly, wantMonthly*12) {
		t.Errorf("Yearly = %v, want monthly*12 = %v", a.IncomeHouseholdTotalYearly, wantMonthly*12)
	}
}

func TestNewAggregate_FrequencyFactors(t *testing.T) {
	tests := []struct {
		freq    Frequency
		monthly float64
	}{
		{Weekly, 4.3333333333333},
		{Biweekly, 2.166666666667},
		{Semimonthly, 2.0},
		{Monthly, 1.0},
		{Yearly, 1.0 / 12.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			a := NewAggregate(singlePersonRequest(Person{
				Age:     30,
				Incomes: []Income{{Amount: 60, Type: Wages, Frequency: tt.freq}},
			}))
			want := 60 * tt.monthly
			if !almostEqual(a.IncomeHouseholdTotalMonthly, want) {
				t.Errorf("Monthly for %s = %v, want %v", tt.freq, a.IncomeHouseholdTotalMonthly, want)
			}
		})
	}
}

func TestNewAggregate_YearlyIsAlwaysMonthlyTimesTwelve(t *testing.T) {
	req := &Request{
		Household: []Household{{}},
		Person: []Person{
			{
				Age:                 40,
				HouseholdMemberType: HeadOfHousehold,
				Incomes: []Income{
					{Amount: 523.17, Type: Wages, Frequency: Weekly},
					{Amount: 90, Type: SSRetirement, Frequency: Biweekly},
				},
			},
			{
				Age:                 12,
				HouseholdMemberType: Child,
				Incomes:             []Income{{Amount: 1200, Type: Gifts, Frequency: Yearly}},
			},
		},
	}

	a := NewAggregate(req)

	if !almostEqual(a.IncomeHouseholdTotalYearly, a.IncomeHouseholdTotalMonthly*12) {
		t.Errorf("Household yearly %v != monthly*12 %v",
			a.IncomeHouseholdTotalYearly, a.IncomeHouseholdTotalMonthly*12)
	}
	for i := range req.Person {
		if !almostEqual(a.IncomePersonYearly[i], a.IncomePersonMonthly[i]*12) {
			t.Errorf("Person %d yearly %v != monthly*12 %v",
				i, a.IncomePersonYearly[i], a.IncomePersonMonthly[i]*12)
		}
		if !almostEqual(a.IncomePersonISYYearly[i], a.IncomePersonISYMonthly[i]*12) {
			t.Errorf("Person %d ISY yearly %v != monthly*12 %v",
				i, a.IncomePersonISYYearly[i], a.IncomePersonISYMonthly[i]*12)
		}
	}
}

func TestNewAggregate_FosterChildMasking(t *testing.T) {
	base := &Request{
		Household: []Household{{}},
		Person: []Person{
			{
				Age:                 40,
				HouseholdMemberType: HeadOfHousehold,
				Incomes:             []Income{{Amount: 2000, Type: Wages, Frequency: Monthly}},
			},
			{
				Age:                 10,
				HouseholdMemberType: FosterChild,
			},
		},
	}
	withFosterIncome := &Request{
		Household: []Household{{}},
		Person: []Person{
			base.Person[0],
			{
				Age:                 10,
				HouseholdMemberType: FosterChild,
				Incomes:             []Income{{Amount: 999, Type: Gifts, Frequency: Monthly}},
			},
		},
	}

	a := NewAggregate(base)
	b := NewAggregate(withFosterIncome)

	if !almostEqual(a.IncomeHouseholdTotalMonthlyLessFoster, b.IncomeHouseholdTotalMonthlyLessFoster) {
		t.Errorf("Foster income leaked into less-foster total: %v vs %v",
			a.IncomeHouseholdTotalMonthlyLessFoster, b.IncomeHouseholdTotalMonthlyLessFoster)
	}
	if !almostEqual(a.IncomeChildCareVoucherTotalMonthly, b.IncomeChildCareVoucherTotalMonthly) {
		t.Errorf("Foster income leaked into voucher total: %v vs %v",
			a.IncomeChildCareVoucherTotalMonthly, b.IncomeChildCareVoucherTotalMonthly)
	}

	// But the full household total does see it.
	if almostEqual(a.IncomeHouseholdTotalMonthly, b.IncomeHouseholdTotalMonthly) {
		t.Error("Full household total should include foster income")
	}
}

func TestNewAggregate_WageMonotonicity(t *testing.T) {
	build := func(wages float64) *Aggregate {
		return NewAggregate(singlePersonRequest(Person{
			Age:     30,
			Incomes: []Income{{Amount: wages, Type: Wages, Frequency: Monthly}},
		}))
	}

	prev := build(0)
	for _, wages := range []float64{1, 500, 1234.56, 10000} {
		cur := build(wages)
		if cur.IncomeHouseholdWageSelfEmploymentMonthly < prev.IncomeHouseholdWageSelfEmploymentMonthly {
			t.Errorf("Wage subtotal decreased when wages rose to %v", wages)
		}
		if cur.IncomeHouseholdTotalMonthly < prev.IncomeHouseholdTotalMonthly {
			t.Errorf("Household total decreased when wages rose to %v", wages)
		}
		prev = cur
	}
}

func TestNewAggregate_SESWeighting(t *testing.T) {
	a := NewAggregate(singlePersonRequest(Person{
		Age: 70,
		Incomes: []Income{
			{Amount: 1000, Type: SSRetirement, Frequency: Monthly},
			{Amount: 400, Type: SSSurvivor, Frequency: Monthly},
			{Amount: 200, Type: Pension, Frequency: Monthly},
		},
	}))

	// Retirement and survivor income count at 75%; pension at 100%.
	want := 1000*0.75 + 400*0.75 + 200.0
	if !almostEqual(a.IncomePersonSESMonthly[0], want) {
		t.Errorf("SES monthly = %v, want %v", a.IncomePersonSESMonthly[0], want)
	}
	if !almostEqual(a.IncomeHeadAndSpouseSESMonthly, want) {
		t.Errorf("Head+spouse SES = %v, want %v", a.IncomeHeadAndSpouseSESMonthly, want)
	}
}

func TestNewAggregate_CashAssistanceWorkExpense(t *testing.T) {
	req := &Request{
		Household: []Household{{}},
		Person: []Person{
			{
				Age:                 40,
				HouseholdMemberType: HeadOfHousehold,
				Incomes:             []Income{{Amount: 1000, Type: Wages, Frequency: Monthly}},
			},
			{
				Age:                 38,
				HouseholdMemberType: Spouse,
				Incomes:             []Income{{Amount: 500, Type: SelfEmployment, Frequency: Monthly}},
			},
			{
				Age:                 70,
				HouseholdMemberType: Parent,
				Incomes:             []Income{{Amount: 300, Type: SSRetirement, Frequency: Monthly}},
			},
		},
	}

	a := NewAggregate(req)

	// All three income types are countable; two persons are employed.
	wantCA := 1000.0 + 500.0 + 300.0
	if !almostEqual(a.IncomeHouseholdMonthlyCA, wantCA) {
		t.Errorf("CA monthly = %v, want %v", a.IncomeHouseholdMonthlyCA, wantCA)
	}
	wantAfter := wantCA - 2*caWorkExpenseDeduction
	if !almostEqual(a.IncomeHouseholdMonthlyCAMinusWorkExpense, wantAfter) {
		t.Errorf("CA minus work expense = %v, want %v", a.IncomeHouseholdMonthlyCAMinusWorkExpense, wantAfter)
	}
}

func TestNewAggregate_ISYExclusions(t *testing.T) {
	a := NewAggregate(singlePersonRequest(Person{
		Age: 30,
		Incomes: []Income{
			{Amount: 1000, Type: Wages, Frequency: Monthly},
			{Amount: 200, Type: SSI, Frequency: Monthly},
			{Amount: 100, Type: Unemployment, Frequency: Monthly},
			{Amount: 50, Type: ChildSupportIncome, Frequency: Monthly},
		},
	}))

	if !almostEqual(a.IncomePersonISYMonthly[0], 1000) {
		t.Errorf("ISY monthly = %v, want 1000 (exclusions not applied)", a.IncomePersonISYMonthly[0])
	}
	if !almostEqual(a.IncomePersonMonthly[0], 1350) {
		t.Errorf("Total monthly = %v, want 1350", a.IncomePersonMonthly[0])
	}
}

func TestNewAggregate_CompositionCounts(t *testing.T) {
	req := &Request{
		Household: []Household{{}},
		Person: []Person{
			{Age: 40, HouseholdMemberType: HeadOfHousehold},
			{Age: 38, HouseholdMemberType: Spouse, Pregnant: true},
			{Age: 10, HouseholdMemberType: Child},
			{Age: 8, HouseholdMemberType: FosterChild},
			{Age: 65, HouseholdMemberType: Parent},
		},
	}

	a := NewAggregate(req)

	if a.MembersNuclearOnly != 3 {
		t.Errorf("MembersNuclearOnly = %d, want 3", a.MembersNuclearOnly)
	}
	if a.FosterChildren != 1 {
		t.Errorf("FosterChildren = %d, want 1", a.FosterChildren)
	}
	if a.MembersPregnant != 1 {
		t.Errorf("MembersPregnant = %d, want 1", a.MembersPregnant)
	}
	if a.MembersPlusPregnant != 6 {
		t.Errorf("MembersPlusPregnant = %d, want 6", a.MembersPlusPregnant)
	}
	if a.MembersPlusPregnantMinusFoster != 5 {
		t.Errorf("MembersPlusPregnantMinusFoster = %d, want 5", a.MembersPlusPregnantMinusFoster)
	}
	if a.ChildCareVoucherHouseholdMembers != 4 {
		t.Errorf("ChildCareVoucherHouseholdMembers = %d, want 4", a.ChildCareVoucherHouseholdMembers)
	}
	if a.HouseholdAllAdults {
		t.Error("HouseholdAllAdults should be false with children present")
	}
	if !a.HeadOfHouseholdMarried {
		t.Error("HeadOfHouseholdMarried should be true with a spouse present")
	}
	if a.HeadIndex != 0 || a.SpouseIndex != 1 {
		t.Errorf("HeadIndex/SpouseIndex = %d/%d, want 0/1", a.HeadIndex, a.SpouseIndex)
	}
}

func TestNewAggregate_OwnersTotal(t *testing.T) {
	req := &Request{
		Household: []Household{{LivingOwner: true}},
		Person: []Person{
			{
				Age:                 70,
				HouseholdMemberType: HeadOfHousehold,
				LivingOwnerOnDeed:   true,
				Incomes:             []Income{{Amount: 2000, Type: Pension, Frequency: Monthly}},
			},
			{
				Age:                 45,
				HouseholdMemberType: Child,
				Incomes:             []Income{{Amount: 3000, Type: Wages, Frequency: Monthly}},
			},
		},
	}

	a := NewAggregate(req)

	if !almostEqual(a.IncomeOwnersTotalYearly, 24000) {
		t.Errorf("Owners yearly = %v, want 24000 (non-deed income excluded)", a.IncomeOwnersTotalYearly)
	}
}

func TestNewAggregate_ExpenseTotals(t *testing.T) {
	a := NewAggregate(singlePersonRequest(Person{
		Age: 35,
		Expenses: []Expense{
			{Amount: 100, Type: ChildCare, Frequency: Monthly},
			{Amount: 50, Type: DependentCare, Frequency: Monthly},
			{Amount: 1200, Type: Rent, Frequency: Monthly},
			{Amount: 300, Type: Mortgage, Frequency: Monthly},
			{Amount: 45, Type: Medical, Frequency: Monthly},
			{Amount: 80, Type: Heating, Frequency: Monthly},
		},
	}))

	if !almostEqual(a.ExpenseHouseholdChildDependentCareMonthly, 150) {
		t.Errorf("Care monthly = %v, want 150", a.ExpenseHouseholdChildDependentCareMonthly)
	}
	if !almostEqual(a.ExpenseHouseholdRentMortgageMonthly, 1500) {
		t.Errorf("Rent+mortgage = %v, want 1500", a.ExpenseHouseholdRentMortgageMonthly)
	}
	if !almostEqual(a.ExpenseHouseholdRentMonthly, 1200) {
		t.Errorf("Rent = %v, want 1200", a.ExpenseHouseholdRentMonthly)
	}
	if !a.ExpenseHouseholdHasHeating {
		t.Error("Heating flag not set")
	}
	if !a.ExpenseHouseholdHasDependentCare {
		t.Error("Dependent care flag not set")
	}
	if !a.ExpenseHouseholdHasChildOrDependentCare {
		t.Error("Child-or-dependent-care flag not set")
	}
}
