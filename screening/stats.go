package screening

import "sync"

// Stats holds counters for the screening pipeline since process start.
type Stats struct {
	Requests         int `json:"requests"`
	Screened         int `json:"screened"`
	Rejected         int `json:"rejected"`
	ParseFailures    int `json:"parse_failures"`
	LegacyConverted  int `json:"legacy_converted"`
	LegacyFailures   int `json:"legacy_failures"`
	RulePanics       int `json:"rule_panics"`
	ProgramsReturned int `json:"programs_returned"`
}

type statsCounter struct {
	mu sync.Mutex
	s  Stats
}

var defaultStats statsCounter

func (c *statsCounter) screened(programs int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Requests++
	c.s.Screened++
	c.s.ProgramsReturned += programs
}

func (c *statsCounter) rejected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Requests++
	c.s.Rejected++
}

func (c *statsCounter) parseFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Requests++
	c.s.ParseFailures++
}

func (c *statsCounter) legacyConverted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.LegacyConverted++
}

func (c *statsCounter) legacyFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Requests++
	c.s.LegacyFailures++
}

func (c *statsCounter) rulePanicked() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.RulePanics++
}

// GetStats returns a snapshot of the pipeline counters.
func GetStats() Stats {
	defaultStats.mu.Lock()
	defer defaultStats.mu.Unlock()
	return defaultStats.s
}
