package screening

// Rule decides eligibility for one benefit program. Eligible must be a
// pure predicate over the aggregate bundle: no side effects, no
// dependence on other rules, no mutation of the aggregate.
type Rule struct {
	// Code is the stable program identifier returned to callers.
	Code string
	// Description is a human-readable summary of the program.
	Description string
	// Eligible reports whether the screened household qualifies.
	Eligible func(a *Aggregate) bool
}

// registry holds every registered rule in insertion order. It is
// populated during package init and read-only afterwards, so concurrent
// screening calls need no synchronization.
var registry []Rule

// Register appends a rule to the registry. Registration happens once at
// startup; duplicate codes are tolerated here but de-duplicated in the
// screening output and rejected by the catalog audit.
func Register(r Rule) {
	registry = append(registry, r)
}

// Rules returns the registered rules in insertion order. The returned
// slice is a copy; callers cannot disturb the registry through it.
func Rules() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	return out
}

// withinLimit reports whether a household-size-indexed table covers
// size and income is at or below that entry. Sizes outside the table
// are not eligible under this archetype.
func withinLimit(limits map[int]float64, size int, income float64) bool {
	limit, ok := limits[size]
	return ok && income <= limit
}
