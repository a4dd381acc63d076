package screening

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Support for the legacy Drools command payload still sent by older
// frontends. The commands wrap household and person facts in insert
// objects, with booleans and numbers encoded as strings. Conversion
// produces the modern key-value tree and lets the regular validation
// pass judge the result.

const (
	droolsHouseholdFact = "accessnyc.request.Household"
	droolsPersonFact    = "accessnyc.request.Person"
)

// IsDroolsPayload reports whether the parsed body carries a legacy
// commands payload. Detection checks key presence only: a body with a
// non-list "commands" value is still routed through conversion, which
// then fails, so such bodies get the conversion-failure diagnostic
// rather than ordinary validation errors.
func IsDroolsPayload(raw map[string]any) bool {
	_, ok := raw["commands"]
	return ok
}

// ConvertDroolsPayload rewrites a legacy commands payload into the
// modern request tree. It returns nil when the commands list is missing
// or malformed, or when no household or person facts could be extracted.
func ConvertDroolsPayload(raw map[string]any) map[string]any {
	commands, ok := raw["commands"].([]any)
	if !ok {
		return nil
	}

	var householdData map[string]any
	var personsData []map[string]any

	for _, c := range commands {
		command, ok := c.(map[string]any)
		if !ok {
			continue
		}
		insert, ok := command["insert"].(map[string]any)
		if !ok {
			continue
		}
		obj, ok := insert["object"].(map[string]any)
		if !ok {
			continue
		}
		if h, ok := obj[droolsHouseholdFact].(map[string]any); ok {
			householdData = h
		} else if p, ok := obj[droolsPersonFact].(map[string]any); ok {
			personsData = append(personsData, p)
		}
	}

	if householdData == nil && len(personsData) == 0 {
		return nil
	}

	converted := map[string]any{}

	if householdData != nil {
		if h := convertDroolsHousehold(householdData); len(h) > 0 {
			converted["household"] = []any{h}
		}
	} else {
		converted["household"] = []any{}
	}

	if len(personsData) > 0 {
		var persons []any
		for _, pd := range personsData {
			if p := convertDroolsPerson(pd); len(p) > 0 {
				persons = append(persons, p)
			}
		}
		if len(persons) > 0 {
			converted["person"] = persons
		}
	} else {
		converted["person"] = []any{}
	}

	converted["withholdPayload"] = true

	return converted
}

// droolsBool coerces the legacy string booleans; anything that is not a
// bool or the string "true" is false.
func droolsBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	}
	return false
}

// droolsNumber coerces string-encoded numbers to a JSON number literal.
// Unparseable values report false and the field is omitted.
func droolsNumber(v any) (json.Number, bool) {
	switch n := v.(type) {
	case json.Number:
		if _, err := n.Float64(); err != nil {
			return "", false
		}
		return n, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return "", false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return "", false
		}
		return json.Number(s), true
	}
	return "", false
}

var droolsHouseholdBools = []string{
	"livingPreferNotToSay", "livingRenting", "livingOwner",
	"livingStayingWithFriend", "livingHotel", "livingShelter",
}

func convertDroolsHousehold(old map[string]any) map[string]any {
	h := map[string]any{}

	if v, ok := old["cashOnHand"]; ok {
		if n, ok := droolsNumber(v); ok {
			h["cashOnHand"] = n
		}
	}
	if v, ok := old["livingRentalType"]; ok {
		h["livingRentalType"] = v
	}
	for _, field := range droolsHouseholdBools {
		if v, ok := old[field]; ok {
			h[field] = droolsBool(v)
		}
	}
	return h
}

var droolsPersonBools = []string{
	"student", "pregnant", "studentFulltime", "blind", "disabled",
	"veteran", "unemployed", "unemployedWorkedLast18Months",
	"benefitsMedicaid", "benefitsMedicaidDisability",
	"livingOwnerOnDeed", "livingRentalOnLease",
}

func convertDroolsPerson(old map[string]any) map[string]any {
	p := map[string]any{}

	if v, ok := old["age"]; ok {
		if n, ok := droolsNumber(v); ok {
			if f, err := n.Float64(); err == nil {
				p["age"] = json.Number(strconv.Itoa(int(f)))
			}
		}
	}

	// The old payloads flag the head either way; both collapse to the
	// modern member type.
	_, hasApplicant := old["applicant"]
	_, hasHead := old["headOfHousehold"]
	if hasApplicant || hasHead {
		if old["applicant"] == "true" || old["headOfHousehold"] == "true" {
			p["householdMemberType"] = "HeadOfHousehold"
		} else {
			p["householdMemberType"] = "HouseholdMember"
		}
	}

	for _, field := range droolsPersonBools {
		if v, ok := old[field]; ok {
			p[field] = droolsBool(v)
		}
	}

	if list, ok := old["incomes"].([]any); ok {
		var incomes []any
		for _, item := range list {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			converted := convertDroolsLineItem(entry)
			if _, hasAmount := converted["amount"]; hasAmount {
				incomes = append(incomes, converted)
			}
		}
		if len(incomes) > 0 {
			p["incomes"] = incomes
		}
	}

	if list, ok := old["expenses"].([]any); ok {
		var expenses []any
		for _, item := range list {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if converted := convertDroolsLineItem(entry); len(converted) > 0 {
				expenses = append(expenses, converted)
			}
		}
		if len(expenses) > 0 {
			p["expenses"] = expenses
		}
	}

	return p
}

// convertDroolsLineItem handles one income or expense entry: numeric
// amount, type passthrough, frequency normalized to title case.
func convertDroolsLineItem(entry map[string]any) map[string]any {
	converted := map[string]any{}
	if v, ok := entry["amount"]; ok {
		if n, ok := droolsNumber(v); ok {
			converted["amount"] = n
		}
	}
	if v, ok := entry["type"]; ok {
		converted["type"] = v
	}
	if v, ok := entry["frequency"]; ok {
		if s, isStr := v.(string); isStr && s != "" {
			converted["frequency"] = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
		} else {
			converted["frequency"] = v
		}
	}
	return converted
}
