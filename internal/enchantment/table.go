// Package enchantment rolls the secondary modifiers attached to a crafted
// item. Enchantment odds are static and unaffected by upgrades.
package enchantment

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/SwordForge_Go/internal/domain"
)

// DefaultCountWeights gives one enchantment weight 1, two 0.5 and three 0.25.
func DefaultCountWeights() []float64 {
	return []float64{1, 0.5, 0.25}
}

// DefaultTypes returns the enchantment types available to every item.
func DefaultTypes() []string {
	return []string{domain.EnchantmentSharpness, domain.EnchantmentPower, domain.EnchantmentResistance}
}

// Table is the immutable enchantment configuration.
type Table struct {
	types        []string
	countWeights []float64
	levels       []domain.EnchantmentLevel
	byLevel      map[int]domain.EnchantmentLevel
}

// NewTable validates and copies the enchantment configuration.
// countWeights[i] is the weight of rolling i+1 enchantments.
func NewTable(types []string, countWeights []float64, levels []domain.EnchantmentLevel) (*Table, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no enchantment types", domain.ErrInvalidTable)
	}
	if len(countWeights) == 0 {
		return nil, fmt.Errorf("%w: no enchantment count weights", domain.ErrInvalidTable)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no enchantment levels", domain.ErrInvalidTable)
	}

	seenTypes := make(map[string]bool, len(types))
	for _, typ := range types {
		key := strings.ToLower(strings.TrimSpace(typ))
		if key == "" {
			return nil, fmt.Errorf("%w: empty enchantment type", domain.ErrInvalidTable)
		}
		if seenTypes[key] {
			return nil, fmt.Errorf("%w: enchantment type %q", domain.ErrDuplicateOption, typ)
		}
		seenTypes[key] = true
	}

	for i, w := range countWeights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: count weight %d is %v", domain.ErrInvalidOdds, i+1, w)
		}
	}

	t := &Table{
		types:        append([]string(nil), types...),
		countWeights: append([]float64(nil), countWeights...),
		levels:       append([]domain.EnchantmentLevel(nil), levels...),
		byLevel:      make(map[int]domain.EnchantmentLevel, len(levels)),
	}
	for _, lvl := range t.levels {
		if lvl.Level < 1 {
			return nil, fmt.Errorf("%w: enchantment level %d must be at least 1", domain.ErrInvalidTable, lvl.Level)
		}
		if _, dup := t.byLevel[lvl.Level]; dup {
			return nil, fmt.Errorf("%w: enchantment level %d", domain.ErrDuplicateOption, lvl.Level)
		}
		if math.IsNaN(lvl.Weight) || math.IsInf(lvl.Weight, 0) || lvl.Weight < 0 {
			return nil, fmt.Errorf("%w: enchantment level %d weight %v", domain.ErrInvalidOdds, lvl.Level, lvl.Weight)
		}
		if lvl.ValueMultiplier < 0 || lvl.DamageMultiplier < 0 || lvl.HealthMultiplier < 0 {
			return nil, fmt.Errorf("%w: enchantment level %d has a negative multiplier", domain.ErrInvalidTable, lvl.Level)
		}
		t.byLevel[lvl.Level] = lvl
	}

	return t, nil
}

// Types returns the enchantment types in configuration order.
func (t *Table) Types() []string { return append([]string(nil), t.types...) }

// Levels returns the level rows in configuration order.
func (t *Table) Levels() []domain.EnchantmentLevel {
	return append([]domain.EnchantmentLevel(nil), t.levels...)
}

// MaxCount is the largest enchantment count the table can roll.
func (t *Table) MaxCount() int { return len(t.countWeights) }

// LevelData returns the row for level, or neutral multipliers when the
// level is not in the table.
func (t *Table) LevelData(level int) domain.EnchantmentLevel {
	if lvl, ok := t.byLevel[level]; ok {
		return lvl
	}
	return domain.NeutralEnchantmentLevel(level)
}

// ValueMultipliers returns the value multiplier of each enchantment.
func (t *Table) ValueMultipliers(enchants []domain.Enchantment) []float64 {
	out := make([]float64, len(enchants))
	for i, e := range enchants {
		out[i] = t.LevelData(e.Level).ValueMultiplier
	}
	return out
}

// Stats multiplies the damage and health multipliers of enchants.
func (t *Table) Stats(enchants []domain.Enchantment) (damage, health float64) {
	damage, health = 1, 1
	for _, e := range enchants {
		lvl := t.LevelData(e.Level)
		damage *= lvl.DamageMultiplier
		health *= lvl.HealthMultiplier
	}
	return damage, health
}
