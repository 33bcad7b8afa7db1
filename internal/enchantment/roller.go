package enchantment

import (
	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/sampler"
)

// Roller draws enchantments for one item at a time.
type Roller struct {
	table *Table
	src   sampler.Source
}

// NewRoller creates a Roller. A nil src uses sampler.Default.
func NewRoller(table *Table, src sampler.Source) *Roller {
	if src == nil {
		src = sampler.Default
	}
	return &Roller{table: table, src: src}
}

// Table returns the table the roller draws from.
func (r *Roller) Table() *Table { return r.table }

// Roll draws between one and maxCount enchantments with distinct types.
// It returns fewer when the table runs out of types and none when
// maxCount <= 0.
func (r *Roller) Roll(maxCount int) []domain.Enchantment {
	if maxCount <= 0 {
		return nil
	}

	count := sampler.PickIndex(r.src, r.table.countWeights) + 1
	if count > maxCount {
		count = maxCount
	}

	available := append([]string(nil), r.table.types...)
	levels := make([]sampler.Weighted[int], len(r.table.levels))
	for i, lvl := range r.table.levels {
		levels[i] = sampler.Weighted[int]{Value: lvl.Level, Weight: lvl.Weight}
	}

	out := make([]domain.Enchantment, 0, count)
	for len(out) < count && len(available) > 0 {
		uniform := make([]float64, len(available))
		for i := range uniform {
			uniform[i] = 1
		}
		idx := sampler.PickIndex(r.src, uniform)
		typ := available[idx]
		available = append(available[:idx], available[idx+1:]...)

		out = append(out, domain.Enchantment{
			Type:  typ,
			Level: sampler.Pick(r.src, levels),
		})
	}

	return out
}
