// Package schedule derives per-reactor construction and operation
// windows from project parameters. Everything here is a pure function
// of its inputs; the schedule is recomputed on every query.
package schedule

import (
	"math"

	"nuclear-lcoe/internal/model"
)

// Entry describes one reactor's lifecycle. Years are 1-indexed:
// construction occupies [ConstructionStart, ConstructionEnd] and the
// reactor generates electricity in years ConstructionEnd+1 through
// OperationEnd inclusive.
type Entry struct {
	Reactor           int
	ConstructionStart int
	ConstructionEnd   int
	OperationEnd      int
}

// ForProject computes the staggered construction schedule: reactor i
// starts construction round(i * delay) years after the first, every
// reactor takes the first reactor's build time, and each operates for
// the full lifetime after its own construction ends.
func ForProject(p model.ProjectParams) []Entry {
	buildYears := int(math.Round(p.FirstConstructionYears))
	entries := make([]Entry, 0, p.NReactors)
	for i := 0; i < p.NReactors; i++ {
		start := int(math.Round(float64(i)*p.DelayBetweenReactorsYears)) + 1
		end := start + buildYears - 1
		entries = append(entries, Entry{
			Reactor:           i,
			ConstructionStart: start,
			ConstructionEnd:   end,
			OperationEnd:      end + p.ReactorLifetimeYears,
		})
	}
	return entries
}

// LastOperationYear is the final year any reactor is operational.
func LastOperationYear(entries []Entry) int {
	last := 0
	for _, e := range entries {
		if e.OperationEnd > last {
			last = e.OperationEnd
		}
	}
	return last
}

// OperationalCount is the number of reactors generating electricity in
// a given 1-indexed year. A reactor's first operational year is the
// year after its construction ends; its last is OperationEnd.
func OperationalCount(entries []Entry, year int) int {
	count := 0
	for _, e := range entries {
		if e.ConstructionEnd < year && year <= e.OperationEnd {
			count++
		}
	}
	return count
}

// CapexSpendingUSD is the CAPEX spent in a given year. Each reactor's
// overnight cost is spread evenly across the first reactor's nominal
// build duration, even for reactors whose schedule offsets differ.
func CapexSpendingUSD(entries []Entry, p model.ProjectParams, c model.CostParams, year int) float64 {
	total := 0.0
	for _, e := range entries {
		if e.ConstructionStart <= year && year <= e.ConstructionEnd {
			total += c.CostPerReactorUSD / p.FirstConstructionYears
		}
	}
	return total
}
