// Package screening implements the benefit eligibility screening pipeline:
// request validation, aggregate derivation, and the program rule catalog.
//
// The package is pure with respect to each screening call - no I/O, no
// shared mutable state after startup. The only process-wide structure is
// the rule registry, which is populated once during init and read-only
// afterwards.
package screening

import "fmt"

// Frequency is how often an income or expense amount recurs.
type Frequency string

const (
	Weekly      Frequency = "Weekly"
	Biweekly    Frequency = "Biweekly"
	Semimonthly Frequency = "Semimonthly"
	Monthly     Frequency = "Monthly"
	Yearly      Frequency = "Yearly"
)

// IncomeType identifies a source of income.
type IncomeType string

const (
	Wages              IncomeType = "Wages"
	SelfEmployment     IncomeType = "SelfEmployment"
	Unemployment       IncomeType = "Unemployment"
	CashAssistance     IncomeType = "CashAssistance"
	ChildSupportIncome IncomeType = "ChildSupport"
	DisabilityMedicaid IncomeType = "DisabilityMedicaid"
	SSI                IncomeType = "SSI"
	SSDependent        IncomeType = "SSDependent"
	SSDisability       IncomeType = "SSDisability"
	SSSurvivor         IncomeType = "SSSurvivor"
	SSRetirement       IncomeType = "SSRetirement"
	NYSDisability      IncomeType = "NYSDisability"
	VeteranIncome      IncomeType = "Veteran"
	Pension            IncomeType = "Pension"
	DeferredComp       IncomeType = "DeferredComp"
	WorkersComp        IncomeType = "WorkersComp"
	Alimony            IncomeType = "Alimony"
	Boarder            IncomeType = "Boarder"
	Gifts              IncomeType = "Gifts"
	RentalIncome       IncomeType = "Rental"
	Investment         IncomeType = "Investment"
)

// ExpenseType identifies a category of household expense.
type ExpenseType string

const (
	ChildCare           ExpenseType = "ChildCare"
	ChildSupportExpense ExpenseType = "ChildSupport"
	DependentCare       ExpenseType = "DependentCare"
	Rent                ExpenseType = "Rent"
	Medical             ExpenseType = "Medical"
	Heating             ExpenseType = "Heating"
	Cooling             ExpenseType = "Cooling"
	Mortgage            ExpenseType = "Mortgage"
	Utilities           ExpenseType = "Utilities"
	Telephone           ExpenseType = "Telephone"
	InsurancePremiums   ExpenseType = "InsurancePremiums"
)

// HouseholdMemberType is a person's relationship to the head of household.
type HouseholdMemberType string

const (
	HeadOfHousehold       HouseholdMemberType = "HeadOfHousehold"
	Child                 HouseholdMemberType = "Child"
	FosterChild           HouseholdMemberType = "FosterChild"
	StepChild             HouseholdMemberType = "StepChild"
	Grandchild            HouseholdMemberType = "Grandchild"
	Spouse                HouseholdMemberType = "Spouse"
	Parent                HouseholdMemberType = "Parent"
	FosterParent          HouseholdMemberType = "FosterParent"
	StepParent            HouseholdMemberType = "StepParent"
	Grandparent           HouseholdMemberType = "Grandparent"
	SisterBrother         HouseholdMemberType = "SisterBrother"
	StepSisterStepBrother HouseholdMemberType = "StepSisterStepBrother"
	BoyfriendGirlfriend   HouseholdMemberType = "BoyfriendGirlfriend"
	DomesticPartner       HouseholdMemberType = "DomesticPartner"
	Unrelated             HouseholdMemberType = "Unrelated"
	Other                 HouseholdMemberType = "Other"
)

// LivingRentalType is the kind of rental housing a household lives in.
type LivingRentalType string

const (
	NYCHA                      LivingRentalType = "NYCHA"
	MarketRate                 LivingRentalType = "MarketRate"
	RentControlled             LivingRentalType = "RentControlled"
	RentRegulatedHotel         LivingRentalType = "RentRegulatedHotel"
	Section213                 LivingRentalType = "Section213"
	LimitedDividendDevelopment LivingRentalType = "LimitedDividendDevelopment"
	MitchellLama               LivingRentalType = "MitchellLama"
	RedevelopmentCompany       LivingRentalType = "RedevelopmentCompany"
	HDFC                       LivingRentalType = "HDFC"
	FamilyHome                 LivingRentalType = "FamilyHome"
	Condo                      LivingRentalType = "Condo"
)

var frequencyValues = map[Frequency]bool{
	Weekly: true, Biweekly: true, Semimonthly: true, Monthly: true, Yearly: true,
}

var incomeTypeValues = map[IncomeType]bool{
	Wages: true, SelfEmployment: true, Unemployment: true, CashAssistance: true,
	ChildSupportIncome: true, DisabilityMedicaid: true, SSI: true, SSDependent: true,
	SSDisability: true, SSSurvivor: true, SSRetirement: true, NYSDisability: true,
	VeteranIncome: true, Pension: true, DeferredComp: true, WorkersComp: true,
	Alimony: true, Boarder: true, Gifts: true, RentalIncome: true, Investment: true,
}

var expenseTypeValues = map[ExpenseType]bool{
	ChildCare: true, ChildSupportExpense: true, DependentCare: true, Rent: true,
	Medical: true, Heating: true, Cooling: true, Mortgage: true, Utilities: true,
	Telephone: true, InsurancePremiums: true,
}

var householdMemberTypeValues = map[HouseholdMemberType]bool{
	HeadOfHousehold: true, Child: true, FosterChild: true, StepChild: true,
	Grandchild: true, Spouse: true, Parent: true, FosterParent: true,
	StepParent: true, Grandparent: true, SisterBrother: true,
	StepSisterStepBrother: true, BoyfriendGirlfriend: true,
	DomesticPartner: true, Unrelated: true, Other: true,
}

var livingRentalTypeValues = map[LivingRentalType]bool{
	NYCHA: true, MarketRate: true, RentControlled: true, RentRegulatedHotel: true,
	Section213: true, LimitedDividendDevelopment: true, MitchellLama: true,
	RedevelopmentCompany: true, HDFC: true, FamilyHome: true, Condo: true,
}

// ParseFrequency validates s against the closed frequency set.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !frequencyValues[f] {
		return "", fmt.Errorf("invalid frequency %q", s)
	}
	return f, nil
}

// ParseIncomeType validates s against the closed income type set.
func ParseIncomeType(s string) (IncomeType, error) {
	t := IncomeType(s)
	if !incomeTypeValues[t] {
		return "", fmt.Errorf("invalid income type %q", s)
	}
	return t, nil
}

// ParseExpenseType validates s against the closed expense type set.
func ParseExpenseType(s string) (ExpenseType, error) {
	t := ExpenseType(s)
	if !expenseTypeValues[t] {
		return "", fmt.Errorf("invalid expense type %q", s)
	}
	return t, nil
}

// ParseHouseholdMemberType validates s against the closed member type set.
func ParseHouseholdMemberType(s string) (HouseholdMemberType, error) {
	t := HouseholdMemberType(s)
	if !householdMemberTypeValues[t] {
		return "", fmt.Errorf("invalid household member type %q", s)
	}
	return t, nil
}

// ParseLivingRentalType validates s against the closed rental type set.
func ParseLivingRentalType(s string) (LivingRentalType, error) {
	t := LivingRentalType(s)
	if !livingRentalTypeValues[t] {
		return "", fmt.Errorf("invalid living rental type %q", s)
	}
	return t, nil
}
