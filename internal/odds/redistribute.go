// Package odds computes effective option odds for an upgrade level.
//
// Each level the most common drawable option (the floor) stays put while
// every other uncapped option's odds shrink by a constant factor. An option
// that reaches the floor is snapped to it and capped; if the floor has
// reached "1 in 1" it is retired and drops out of the draw pool.
package odds

import (
	"fmt"
	"math"

	"github.com/osse101/SwordForge_Go/internal/domain"
)

// ValidateImprovementFactor checks that 0 < k < 1.
func ValidateImprovementFactor(k float64) error {
	if math.IsNaN(k) || k <= 0 || k >= 1 {
		return fmt.Errorf("%w: improvement factor must be in (0, 1), got %v", domain.ErrInvalidInput, k)
	}
	return nil
}

// Redistribute runs the cascade for level steps over table and returns the
// resulting snapshot. It is a pure function of its arguments.
//
// A negative level is treated as 0. An out-of-range k is replaced with
// domain.DefaultImprovementFactor; use ValidateImprovementFactor when k
// comes from configuration. At least one option always stays drawable.
func Redistribute(table *domain.OptionTable, level int, k float64) Snapshot {
	if ValidateImprovementFactor(k) != nil {
		k = domain.DefaultImprovementFactor
	}
	if level < 0 {
		level = 0
	}

	n := table.Len()
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		opt := table.At(i)
		entries[i] = Entry{Name: opt.Name, BaseOdds: opt.BaseOdds, Odds: opt.BaseOdds}
	}

	drawable := n
	for step := 1; step <= level; step++ {
		floor := floorIndex(entries)
		floorOdds := entries[floor].Odds

		moved := false
		for i := range entries {
			e := &entries[i]
			if i == floor || e.Retired || e.Capped {
				continue
			}
			moved = true

			e.Odds *= k
			if e.Odds > floorOdds {
				continue
			}
			e.Odds = floorOdds
			e.Capped = true

			if floorOdds <= 1.0 && !entries[floor].Retired && drawable > 1 {
				entries[floor].Retired = true
				drawable--
			}
		}

		// Every drawable option other than the floor is capped: later steps
		// cannot change anything.
		if !moved {
			break
		}
	}

	for i := range entries {
		if entries[i].Retired {
			entries[i].Odds = 0
		}
	}

	return Snapshot{
		category: table.Category(),
		level:    level,
		factor:   k,
		entries:  entries,
	}
}

// floorIndex returns the drawable entry with the lowest odds, first in table
// order on ties. The cascade keeps at least one entry drawable.
func floorIndex(entries []Entry) int {
	best := -1
	for i, e := range entries {
		if e.Retired {
			continue
		}
		if best == -1 || e.Odds < entries[best].Odds {
			best = i
		}
	}
	return best
}
