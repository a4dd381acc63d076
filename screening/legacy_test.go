package screening

import (
	"encoding/json"
	"testing"
)

func TestConvertDroolsPayload_NotACommandsList(t *testing.T) {
	if got := ConvertDroolsPayload(map[string]any{"commands": "nope"}); got != nil {
		t.Errorf("Expected nil for malformed commands, got %v", got)
	}
	if got := ConvertDroolsPayload(map[string]any{}); got != nil {
		t.Errorf("Expected nil without commands, got %v", got)
	}
}

func TestConvertDroolsPayload_NothingExtractable(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			map[string]any{"insert": map[string]any{"object": map[string]any{
				"some.other.Fact": map[string]any{"x": "1"},
			}}},
			map[string]any{"fire-all-rules": map[string]any{}},
		},
	}
	if got := ConvertDroolsPayload(raw); got != nil {
		t.Errorf("Expected nil when no facts are recognized, got %v", got)
	}
}

func TestConvertDroolsPayload_PersonOnly(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			map[string]any{"insert": map[string]any{"object": map[string]any{
				"accessnyc.request.Person": map[string]any{
					"age":       "30",
					"applicant": "true",
				},
			}}},
		},
	}

	got := ConvertDroolsPayload(raw)
	if got == nil {
		t.Fatal("Expected a converted payload")
	}

	households, ok := got["household"].([]any)
	if !ok || len(households) != 0 {
		t.Errorf("household = %v, want empty list", got["household"])
	}
	persons, ok := got["person"].([]any)
	if !ok || len(persons) != 1 {
		t.Fatalf("person = %v, want one entry", got["person"])
	}
	p := persons[0].(map[string]any)
	if p["age"] != json.Number("30") {
		t.Errorf("age = %v, want 30", p["age"])
	}
	if p["householdMemberType"] != "HeadOfHousehold" {
		t.Errorf("householdMemberType = %v, want HeadOfHousehold", p["householdMemberType"])
	}
	if got["withholdPayload"] != true {
		t.Error("withholdPayload not set")
	}
}

func TestConvertDroolsPayload_NonApplicantBecomesMember(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			map[string]any{"insert": map[string]any{"object": map[string]any{
				"accessnyc.request.Person": map[string]any{
					"age":       "12",
					"applicant": "false",
				},
			}}},
		},
	}

	got := ConvertDroolsPayload(raw)
	p := got["person"].([]any)[0].(map[string]any)
	if p["householdMemberType"] != "HouseholdMember" {
		t.Errorf("householdMemberType = %v, want HouseholdMember", p["householdMemberType"])
	}
}

func TestConvertDroolsPayload_HouseholdBooleansAndCash(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			map[string]any{"insert": map[string]any{"object": map[string]any{
				"accessnyc.request.Household": map[string]any{
					"livingRenting":    "true",
					"livingShelter":    "false",
					"livingRentalType": "NYCHA",
					"cashOnHand":       "120.50",
				},
			}}},
		},
	}

	got := ConvertDroolsPayload(raw)
	households := got["household"].([]any)
	if len(households) != 1 {
		t.Fatalf("household = %v, want one entry", got["household"])
	}
	h := households[0].(map[string]any)
	if h["livingRenting"] != true {
		t.Errorf("livingRenting = %v, want true", h["livingRenting"])
	}
	if h["livingShelter"] != false {
		t.Errorf("livingShelter = %v, want false", h["livingShelter"])
	}
	if h["livingRentalType"] != "NYCHA" {
		t.Errorf("livingRentalType = %v, want NYCHA", h["livingRentalType"])
	}
	if h["cashOnHand"] != json.Number("120.50") {
		t.Errorf("cashOnHand = %v, want 120.50", h["cashOnHand"])
	}
}

func TestConvertDroolsPayload_UnparseableNumbersOmitted(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			map[string]any{"insert": map[string]any{"object": map[string]any{
				"accessnyc.request.Household": map[string]any{
					"cashOnHand":    "lots",
					"livingRenting": "true",
				},
			}}},
		},
	}

	got := ConvertDroolsPayload(raw)
	h := got["household"].([]any)[0].(map[string]any)
	if _, present := h["cashOnHand"]; present {
		t.Errorf("Unparseable cashOnHand should be omitted, got %v", h["cashOnHand"])
	}
}

func TestConvertDroolsPayload_IncomesAndFrequencyNormalization(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			map[string]any{"insert": map[string]any{"object": map[string]any{
				"accessnyc.request.Person": map[string]any{
					"age":       "30",
					"applicant": "true",
					"incomes": []any{
						map[string]any{"amount": "1000", "type": "Wages", "frequency": "MONTHLY"},
						map[string]any{"type": "Wages", "frequency": "weekly"},
					},
				},
			}}},
		},
	}

	got := ConvertDroolsPayload(raw)
	p := got["person"].([]any)[0].(map[string]any)
	incomes := p["incomes"].([]any)

	// The amount-less entry is dropped.
	if len(incomes) != 1 {
		t.Fatalf("incomes = %v, want one entry", incomes)
	}
	inc := incomes[0].(map[string]any)
	if inc["frequency"] != "Monthly" {
		t.Errorf("frequency = %v, want Monthly", inc["frequency"])
	}
	if inc["amount"] != json.Number("1000") {
		t.Errorf("amount = %v, want 1000", inc["amount"])
	}
}

func TestConvertDroolsPayload_FractionalAgeTruncated(t *testing.T) {
	raw := map[string]any{
		"commands": []any{
			map[string]any{"insert": map[string]any{"object": map[string]any{
				"accessnyc.request.Person": map[string]any{
					"age":       "30.9",
					"applicant": "true",
				},
			}}},
		},
	}

	got := ConvertDroolsPayload(raw)
	p := got["person"].([]any)[0].(map[string]any)
	if p["age"] != json.Number("30") {
		t.Errorf("age = %v, want truncated 30", p["age"])
	}
}

func TestIsDroolsPayload(t *testing.T) {
	if !IsDroolsPayload(map[string]any{"commands": []any{}}) {
		t.Error("Expected commands payload to be recognized")
	}
	if IsDroolsPayload(map[string]any{"household": []any{}}) {
		t.Error("Modern payload misrecognized as legacy")
	}
}
