package screening

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Validation limits for monetary and demographic fields.
const (
	maxAmount     = 999999999999.99
	maxCashOnHand = 9999999.99
	maxCaseIDLen  = 64
	minPersons    = 1
	maxPersons    = 8
	maxAge        = 150
)

var caseIDPattern = regexp.MustCompile(`^[a-zA-Z0-9/.-]*$`)

// errorList collects validation diagnostics in encounter order.
// Each message has the form "path -> to -> field: diagnostic".
type errorList struct {
	errs []string
}

func (e *errorList) add(path []string, msg string) {
	e.errs = append(e.errs, strings.Join(path, " -> ")+": "+msg)
}

func (e *errorList) addBare(msg string) {
	e.errs = append(e.errs, msg)
}

// Validate types a parsed key-value tree into a canonical Request and
// checks the cross-field household rules. Numbers in raw must be
// json.Number (decode the body with UseNumber) so that decimal precision
// can be checked against the literal.
//
// On failure ok is false, req is nil and errs is non-empty; no partial
// request is ever returned.
func Validate(raw map[string]any) (ok bool, req *Request, errs []string) {
	el := &errorList{}
	r := &Request{}

	if v, found := lookup(raw, "withhold_payload", "withholdPayload"); found {
		if b, err := asBool(v); err != nil {
			el.add([]string{"withhold_payload"}, err.Error())
		} else {
			r.WithholdPayload = b
		}
	}

	households, found := lookup(raw, "household", "household")
	if !found {
		el.add([]string{"household"}, "field required")
	} else if list, isList := households.([]any); !isList {
		el.add([]string{"household"}, "must be a list")
	} else if len(list) != 1 {
		el.add([]string{"household"}, "must contain exactly 1 item")
	} else {
		for i, item := range list {
			path := []string{"household", fmt.Sprint(i)}
			obj, isMap := item.(map[string]any)
			if !isMap {
				el.add(path, "must be an object")
				continue
			}
			r.Household = append(r.Household, validateHousehold(obj, path, el))
		}
	}

	persons, found := lookup(raw, "person", "person")
	if !found {
		el.add([]string{"person"}, "field required")
	} else if list, isList := persons.([]any); !isList {
		el.add([]string{"person"}, "must be a list")
	} else if len(list) < minPersons || len(list) > maxPersons {
		el.add([]string{"person"}, fmt.Sprintf("must contain between %d and %d items", minPersons, maxPersons))
	} else {
		for i, item := range list {
			path := []string{"person", fmt.Sprint(i)}
			obj, isMap := item.(map[string]any)
			if !isMap {
				el.add(path, "must be an object")
				continue
			}
			r.Person = append(r.Person, validatePerson(obj, path, el))
		}
	}

	// Cross-field rules run only on a request that typed cleanly,
	// matching the field-then-model validation order.
	if len(el.errs) == 0 {
		checkHouseholdRules(r, el)
	}

	if len(el.errs) > 0 {
		return false, nil, el.errs
	}
	return true, r, nil
}

func validateHousehold(obj map[string]any, path []string, el *errorList) Household {
	var h Household

	if v, found := lookup(obj, "case_id", "caseId"); found {
		p := append(path, "case_id")
		s, err := asString(v)
		switch {
		case err != nil:
			el.add(p, err.Error())
		case len(s) > maxCaseIDLen:
			el.add(p, fmt.Sprintf("must be at most %d characters", maxCaseIDLen))
		case !caseIDPattern.MatchString(s):
			el.add(p, "may only contain letters, digits, '/', '.' and '-'")
		default:
			h.CaseID = s
		}
	}

	if v, found := lookup(obj, "cash_on_hand", "cashOnHand"); found && v != nil {
		p := append(path, "cash_on_hand")
		amt, err := asAmount(v, maxCashOnHand)
		if err != nil {
			el.add(p, err.Error())
		} else {
			h.CashOnHand = &amt
		}
	}

	if v, found := lookup(obj, "living_rental_type", "livingRentalType"); found && v != nil {
		p := append(path, "living_rental_type")
		s, err := asString(v)
		if err != nil {
			el.add(p, err.Error())
		} else if rt, err := ParseLivingRentalType(s); err != nil {
			el.add(p, err.Error())
		} else {
			h.LivingRentalType = rt
		}
	}

	boolField(obj, path, "living_renting", "livingRenting", &h.LivingRenting, el)
	boolField(obj, path, "living_owner", "livingOwner", &h.LivingOwner, el)
	boolField(obj, path, "living_staying_with_friend", "livingStayingWithFriend", &h.LivingStayingWithFriend, el)
	boolField(obj, path, "living_hotel", "livingHotel", &h.LivingHotel, el)
	boolField(obj, path, "living_shelter", "livingShelter", &h.LivingShelter, el)
	boolField(obj, path, "living_prefer_not_to_say", "livingPreferNotToSay", &h.LivingPreferNotToSay, el)

	return h
}

func validatePerson(obj map[string]any, path []string, el *errorList) Person {
	var p Person

	if v, found := lookup(obj, "age", "age"); !found {
		el.add(append(path, "age"), "field required")
	} else if age, err := asInt(v); err != nil {
		el.add(append(path, "age"), err.Error())
	} else if age < 0 || age > maxAge {
		el.add(append(path, "age"), fmt.Sprintf("must be between 0 and %d", maxAge))
	} else {
		p.Age = age
	}

	boolField(obj, path, "student", "student", &p.Student, el)
	boolField(obj, path, "student_fulltime", "studentFulltime", &p.StudentFulltime, el)
	boolField(obj, path, "pregnant", "pregnant", &p.Pregnant, el)
	boolField(obj, path, "unemployed", "unemployed", &p.Unemployed, el)
	boolField(obj, path, "unemployed_worked_last_18_months", "unemployedWorkedLast18Months", &p.UnemployedWorkedLast18Months, el)
	boolField(obj, path, "blind", "blind", &p.Blind, el)
	boolField(obj, path, "disabled", "disabled", &p.Disabled, el)
	boolField(obj, path, "veteran", "veteran", &p.Veteran, el)
	boolField(obj, path, "benefits_medicaid", "benefitsMedicaid", &p.BenefitsMedicaid, el)
	boolField(obj, path, "benefits_medicaid_disability", "benefitsMedicaidDisability", &p.BenefitsMedicaidDisability, el)
	boolField(obj, path, "living_owner_on_deed", "livingOwnerOnDeed", &p.LivingOwnerOnDeed, el)
	boolField(obj, path, "living_rental_on_lease", "livingRentalOnLease", &p.LivingRentalOnLease, el)

	if v, found := lookup(obj, "household_member_type", "householdMemberType"); found && v != nil {
		fp := append(path, "household_member_type")
		s, err := asString(v)
		if err != nil {
			el.add(fp, err.Error())
		} else if mt, err := ParseHouseholdMemberType(s); err != nil {
			el.add(fp, err.Error())
		} else {
			p.HouseholdMemberType = mt
		}
	}

	if v, found := lookup(obj, "incomes", "incomes"); found && v != nil {
		list, isList := v.([]any)
		if !isList {
			el.add(append(path, "incomes"), "must be a list")
		} else {
			for i, item := range list {
				ip := append(path, "incomes", fmt.Sprint(i))
				obj, isMap := item.(map[string]any)
				if !isMap {
					el.add(ip, "must be an object")
					continue
				}
				var inc Income
				inc.Amount = amountField(obj, ip, el)
				if s, ok := enumField(obj, ip, "type", el); ok {
					if t, err := ParseIncomeType(s); err != nil {
						el.add(append(ip, "type"), err.Error())
					} else {
						inc.Type = t
					}
				}
				if s, ok := enumField(obj, ip, "frequency", el); ok {
					if f, err := ParseFrequency(s); err != nil {
						el.add(append(ip, "frequency"), err.Error())
					} else {
						inc.Frequency = f
					}
				}
				p.Incomes = append(p.Incomes, inc)
			}
		}
	}

	if v, found := lookup(obj, "expenses", "expenses"); found && v != nil {
		list, isList := v.([]any)
		if !isList {
			el.add(append(path, "expenses"), "must be a list")
		} else {
			for i, item := range list {
				ep := append(path, "expenses", fmt.Sprint(i))
				obj, isMap := item.(map[string]any)
				if !isMap {
					el.add(ep, "must be an object")
					continue
				}
				var exp Expense
				exp.Amount = amountField(obj, ep, el)
				if s, ok := enumField(obj, ep, "type", el); ok {
					if t, err := ParseExpenseType(s); err != nil {
						el.add(append(ep, "type"), err.Error())
					} else {
						exp.Type = t
					}
				}
				if s, ok := enumField(obj, ep, "frequency", el); ok {
					if f, err := ParseFrequency(s); err != nil {
						el.add(append(ep, "frequency"), err.Error())
					} else {
						exp.Frequency = f
					}
				}
				p.Expenses = append(p.Expenses, exp)
			}
		}
	}

	return p
}

// checkHouseholdRules enforces the five cross-field invariants, one
// diagnostic per violated rule, in a fixed order.
func checkHouseholdRules(r *Request, el *errorList) {
	heads := 0
	for _, p := range r.Person {
		if p.HouseholdMemberType == HeadOfHousehold {
			heads++
		}
	}
	if heads != 1 {
		el.addBare("Exactly one person's householdMemberType must be 'HeadOfHousehold'")
	}

	if len(r.Household) != 1 {
		return
	}
	h := r.Household[0]

	if h.LivingRentalType != "" && !h.LivingRenting {
		el.addBare("household.livingRenting must be true if household.livingRentalType is specified.")
	}

	if h.LivingPreferNotToSay {
		if h.LivingRenting || h.LivingOwner || h.LivingStayingWithFriend || h.LivingHotel || h.LivingShelter {
			el.addBare("If household.livingPreferNotToSay is true, other living flags (renting, owner, etc.) must be false.")
		}
	}

	if !h.LivingRenting {
		for _, p := range r.Person {
			if p.LivingRentalOnLease {
				el.addBare("No person.livingRentalOnLease can be true when household.livingRenting is false.")
				break
			}
		}
	}

	if !h.LivingOwner {
		for _, p := range r.Person {
			if p.LivingOwnerOnDeed {
				el.addBare("No person.livingOwnerOnDeed can be true when household.livingOwner is false.")
				break
			}
		}
	}
}

// lookup finds a field by its canonical snake_case name or camelCase alias.
// The canonical name wins when both are present.
func lookup(m map[string]any, canonical, alias string) (any, bool) {
	if v, ok := m[canonical]; ok {
		return v, true
	}
	if v, ok := m[alias]; ok {
		return v, true
	}
	return nil, false
}

func boolField(m map[string]any, path []string, canonical, alias string, dst *bool, el *errorList) {
	v, found := lookup(m, canonical, alias)
	if !found || v == nil {
		return
	}
	b, err := asBool(v)
	if err != nil {
		el.add(append(path, canonical), err.Error())
		return
	}
	*dst = b
}

func amountField(m map[string]any, path []string, el *errorList) float64 {
	v, found := lookup(m, "amount", "amount")
	if !found {
		el.add(append(path, "amount"), "field required")
		return 0
	}
	amt, err := asAmount(v, maxAmount)
	if err != nil {
		el.add(append(path, "amount"), err.Error())
		return 0
	}
	return amt
}

func enumField(m map[string]any, path []string, name string, el *errorList) (string, bool) {
	v, found := lookup(m, name, name)
	if !found {
		el.add(append(path, name), "field required")
		return "", false
	}
	s, err := asString(v)
	if err != nil {
		el.add(append(path, name), err.Error())
		return "", false
	}
	return s, true
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("must be a string")
	}
	return strings.TrimSpace(s), nil
}

func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("must be a boolean")
}

func asInt(v any) (int, error) {
	n, ok := v.(json.Number)
	if !ok {
		if s, isStr := v.(string); isStr {
			n = json.Number(strings.TrimSpace(s))
		} else {
			return 0, fmt.Errorf("must be an integer")
		}
	}
	i, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	return int(i), nil
}

// asAmount types a monetary value: non-negative, bounded by max, and at
// most two decimal places in the literal representation.
func asAmount(v any, max float64) (float64, error) {
	n, ok := v.(json.Number)
	if !ok {
		if s, isStr := v.(string); isStr {
			n = json.Number(strings.TrimSpace(s))
		} else {
			return 0, fmt.Errorf("must be a number")
		}
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("must be a number")
	}
	if f < 0 {
		return 0, fmt.Errorf("must be greater than or equal to 0")
	}
	if f > max {
		return 0, fmt.Errorf("must be less than or equal to %v", max)
	}
	if decimalPlaces(n.String()) > 2 {
		return 0, fmt.Errorf("cannot have more than 2 decimal places")
	}
	return f, nil
}

// decimalPlaces returns the number of significant fractional digits in a
// JSON number literal, accounting for exponent notation.
func decimalPlaces(lit string) int {
	mantissa := lit
	exp := 0
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		mantissa = lit[:i]
		fmt.Sscanf(lit[i+1:], "%d", &exp)
	}
	frac := 0
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		frac = len(strings.TrimRight(mantissa[i+1:], "0"))
	}
	places := frac - exp
	if places < 0 {
		return 0
	}
	return places
}
