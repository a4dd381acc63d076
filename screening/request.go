package screening

// Income is a single source of income for a person.
type Income struct {
	Amount    float64
	Type      IncomeType
	Frequency Frequency
}

// Expense is a single recurring expense for a person.
type Expense struct {
	Amount    float64
	Type      ExpenseType
	Frequency Frequency
}

// Person is one member of the household being screened.
// HouseholdMemberType is empty when the caller did not supply one.
type Person struct {
	Age                          int
	Student                      bool
	StudentFulltime              bool
	Pregnant                     bool
	Unemployed                   bool
	UnemployedWorkedLast18Months bool
	Blind                        bool
	Disabled                     bool
	Veteran                      bool
	BenefitsMedicaid             bool
	BenefitsMedicaidDisability   bool
	LivingOwnerOnDeed            bool
	LivingRentalOnLease          bool
	HouseholdMemberType          HouseholdMemberType
	Incomes                      []Income
	Expenses                     []Expense
}

// Household holds the household-level living situation and cash on hand.
// CashOnHand is nil when not supplied.
type Household struct {
	CaseID                  string
	CashOnHand              *float64
	LivingRentalType        LivingRentalType
	LivingRenting           bool
	LivingOwner             bool
	LivingStayingWithFriend bool
	LivingHotel             bool
	LivingShelter           bool
	LivingPreferNotToSay    bool
}

// Request is a canonical, validated screening request: exactly one
// household and between 1 and 8 persons. Instances are produced by
// Validate and never mutated afterwards.
type Request struct {
	WithholdPayload bool
	Household       []Household
	Person          []Person
}

// Head returns the head of household, or nil if none is present.
// Validated requests always have exactly one.
func (r *Request) Head() *Person {
	for i := range r.Person {
		if r.Person[i].HouseholdMemberType == HeadOfHousehold {
			return &r.Person[i]
		}
	}
	return nil
}

// Spouse returns the spouse, or nil if none is present.
func (r *Request) Spouse() *Person {
	for i := range r.Person {
		if r.Person[i].HouseholdMemberType == Spouse {
			return &r.Person[i]
		}
	}
	return nil
}
