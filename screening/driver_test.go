package screening

import (
	"encoding/json"
	"testing"
)

const validBody = `{
	"household": [{"livingRenting": true, "livingRentalType": "NYCHA"}],
	"person": [{"age": 30, "householdMemberType": "HeadOfHousehold", "livingRentalOnLease": true}]
}`

func TestScreen_SuccessEnvelope(t *testing.T) {
	resp := Screen([]byte(validBody))

	if resp.Status != 200 {
		t.Fatalf("Status = %d, want 200", resp.Status)
	}
	out, ok := resp.Body.(Outcome)
	if !ok {
		t.Fatalf("Body is %T, want Outcome", resp.Body)
	}
	if !out.Success {
		t.Error("Success = false, want true")
	}
	if out.TotalProgramsEligible != len(out.EligiblePrograms) {
		t.Errorf("TotalProgramsEligible = %d, want %d",
			out.TotalProgramsEligible, len(out.EligiblePrograms))
	}
	if len(out.EligiblePrograms) == 0 {
		t.Error("Expected at least the universal programs")
	}
}

func TestScreen_Deterministic(t *testing.T) {
	first, err := json.Marshal(Screen([]byte(validBody)).Body)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		next, err := json.Marshal(Screen([]byte(validBody)).Body)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(first) != string(next) {
			t.Fatalf("Screen() is not deterministic:\n%s\n%s", first, next)
		}
	}
}

func TestScreen_InvalidJSON(t *testing.T) {
	resp := Screen([]byte(`{not json`))

	if resp.Status != 400 {
		t.Fatalf("Status = %d, want 400", resp.Status)
	}
	fail, ok := resp.Body.(Failure)
	if !ok {
		t.Fatalf("Body is %T, want Failure", resp.Body)
	}
	if fail.Success {
		t.Error("Success = true, want false")
	}
	if len(fail.Errors) != 1 || fail.Errors[0] != "Invalid JSON in request body" {
		t.Errorf("Errors = %v, want [Invalid JSON in request body]", fail.Errors)
	}
}

func TestScreen_ValidationErrors(t *testing.T) {
	resp := Screen([]byte(`{"household": [{}], "person": [{"age": 30}]}`))

	if resp.Status != 400 {
		t.Fatalf("Status = %d, want 400", resp.Status)
	}
	fail := resp.Body.(Failure)
	if len(fail.Errors) == 0 {
		t.Fatal("Expected validation diagnostics")
	}
	if fail.Errors[0] != "Exactly one person's householdMemberType must be 'HeadOfHousehold'" {
		t.Errorf("Errors[0] = %q", fail.Errors[0])
	}
}

func TestScreen_LegacyPayloadConversionFailure(t *testing.T) {
	// Any body with a "commands" key is treated as legacy, even when the
	// value is not a list; conversion then fails with its own diagnostic
	// instead of ordinary validation errors.
	bodies := []string{
		`{"commands": []}`,
		`{"commands": "nope"}`,
		`{"commands": 7, "household": [{}], "person": [{"age": 30, "householdMemberType": "HeadOfHousehold"}]}`,
	}

	for _, body := range bodies {
		resp := Screen([]byte(body))

		if resp.Status != 400 {
			t.Fatalf("Screen(%s) status = %d, want 400", body, resp.Status)
		}
		fail := resp.Body.(Failure)
		if len(fail.Errors) != 1 || fail.Errors[0] != "Failed to convert Drools format payload" {
			t.Errorf("Screen(%s) errors = %v, want [Failed to convert Drools format payload]", body, fail.Errors)
		}
	}
}

func TestScreen_LegacyPersonOnlyPayload(t *testing.T) {
	// The shim yields an empty household list, which then fails
	// validation: a household entry is mandatory.
	body := `{"commands":[{"insert":{"object":{"accessnyc.request.Person":{"age":"30","applicant":"true"}}}}]}`
	resp := Screen([]byte(body))

	if resp.Status != 400 {
		t.Fatalf("Status = %d, want 400", resp.Status)
	}
	fail := resp.Body.(Failure)
	if len(fail.Errors) == 0 {
		t.Fatal("Expected validation diagnostics for the converted payload")
	}
}

func TestScreen_LegacyFullPayload(t *testing.T) {
	body := `{"commands":[
		{"insert":{"object":{"accessnyc.request.Household":{"livingRenting":"true","livingRentalType":"NYCHA"}}}},
		{"insert":{"object":{"accessnyc.request.Person":{"age":"30","applicant":"true","livingRentalOnLease":"true"}}}}
	]}`
	resp := Screen([]byte(body))

	if resp.Status != 200 {
		t.Fatalf("Status = %d, want 200 (body: %+v)", resp.Status, resp.Body)
	}
	out := resp.Body.(Outcome)
	if !contains(out.EligiblePrograms, "S2R054") {
		t.Errorf("Expected Big Apple Connect for a legacy NYCHA payload, got %v", out.EligiblePrograms)
	}
}

func TestScreen_NoDuplicateProgramCodes(t *testing.T) {
	out := Screen([]byte(validBody)).Body.(Outcome)

	seen := make(map[string]bool)
	for _, code := range out.EligiblePrograms {
		if seen[code] {
			t.Errorf("Duplicate program code %s in response", code)
		}
		seen[code] = true
	}
}

func TestEvaluate_PanickingRuleIsIsolated(t *testing.T) {
	// A broken rule must fail closed without disturbing the rest of the
	// catalog.
	saved := registry
	defer func() { registry = saved }()

	registry = append([]Rule{{
		Code:        "S2R999",
		Description: "Broken test rule",
		Eligible:    func(a *Aggregate) bool { panic("boom") },
	}}, saved...)

	req := &Request{
		Household: []Household{{}},
		Person:    []Person{{Age: 30, HouseholdMemberType: HeadOfHousehold}},
	}
	codes := Evaluate(NewAggregate(req))

	if contains(codes, "S2R999") {
		t.Error("Panicking rule reported eligible")
	}

	registry = saved
	want := Evaluate(NewAggregate(req))
	if len(codes) != len(want) {
		t.Errorf("Panicking rule disturbed other results: %v vs %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("Result order changed at %d: %v vs %v", i, codes, want)
		}
	}
}

func TestScreen_ResponseBodyMarshalsWithSnakeCaseKeys(t *testing.T) {
	out, err := json.Marshal(Screen([]byte(validBody)).Body)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"success", "eligible_programs", "total_programs_eligible"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Response body missing key %q: %s", key, out)
		}
	}
}
