package screening

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Response is the wire reply for one screening call.
type Response struct {
	Status int
	Body   any
}

// Outcome is the success body listing eligible program codes.
type Outcome struct {
	Success               bool     `json:"success"`
	EligiblePrograms      []string `json:"eligible_programs"`
	TotalProgramsEligible int      `json:"total_programs_eligible"`
}

// Failure is the rejection body carrying diagnostics.
type Failure struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func failure(status int, errs ...string) Response {
	return Response{Status: status, Body: Failure{Success: false, Errors: errs}}
}

// Screen runs the full pipeline on a raw request body: parse, legacy
// conversion when the body is a Drools commands payload, validation,
// aggregation, and rule evaluation. It never panics; a broken rule
// fails closed for its program only.
func Screen(body []byte) Response {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		defaultStats.parseFailure()
		return failure(400, "Invalid JSON in request body")
	}

	if IsDroolsPayload(raw) {
		converted := ConvertDroolsPayload(raw)
		if converted == nil {
			defaultStats.legacyFailure()
			return failure(400, "Failed to convert Drools format payload")
		}
		defaultStats.legacyConverted()
		raw = converted
	}

	ok, req, errs := Validate(raw)
	if !ok {
		defaultStats.rejected()
		return failure(400, errs...)
	}

	programs := Evaluate(NewAggregate(req))
	defaultStats.screened(len(programs))

	return Response{
		Status: 200,
		Body: Outcome{
			Success:               true,
			EligiblePrograms:      programs,
			TotalProgramsEligible: len(programs),
		},
	}
}

// Evaluate runs every registered rule against the aggregate in
// registration order. A panicking rule is logged and treated as not
// eligible. The returned codes are unique, keeping first occurrences.
func Evaluate(a *Aggregate) []string {
	programs := make([]string, 0, len(registry))
	seen := make(map[string]bool, len(registry))

	for _, r := range registry {
		if seen[r.Code] {
			continue
		}
		if evaluateRule(r, a) {
			programs = append(programs, r.Code)
			seen[r.Code] = true
		}
	}
	return programs
}

func evaluateRule(r Rule, a *Aggregate) (eligible bool) {
	defer func() {
		if rec := recover(); rec != nil {
			defaultStats.rulePanicked()
			slog.Warn("rule evaluation panicked, treating as not eligible",
				"program", r.Code,
				"error", fmt.Sprint(rec))
			eligible = false
		}
	}()
	return r.Eligible(a)
}
