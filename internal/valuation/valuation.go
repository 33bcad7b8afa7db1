// Package valuation derives an item's monetary value from its rolled
// multipliers, enchantments and level.
package valuation

import (
	"math"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/utils"
)

// Input holds everything the value formula depends on.
type Input struct {
	BaseValue                   float64
	OptionMultipliers           []float64
	EnchantmentValueMultipliers []float64
	ItemLevel                   int
	LevelMultiplierPerLevel     float64
}

// ComputeValue evaluates
//
//	base * Π(option) * Π(enchantment) * (1 + max(0, level-1) * perLevel)
//
// Negative or NaN factors count as zero and the result is never negative.
func ComputeValue(in Input) float64 {
	value := utils.ClampNonNegative(in.BaseValue)
	for _, m := range in.OptionMultipliers {
		value *= utils.ClampNonNegative(m)
	}
	for _, m := range in.EnchantmentValueMultipliers {
		value *= utils.ClampNonNegative(m)
	}

	levels := math.Max(0, float64(in.ItemLevel-1))
	value *= 1 + levels*utils.ClampNonNegative(in.LevelMultiplierPerLevel)

	return utils.ClampNonNegative(value)
}

// MultiplierFor returns the multiplier of name in table, ignoring case.
// A nil table or unknown name yields the neutral multiplier 1.
func MultiplierFor(table *domain.OptionTable, name string) float64 {
	if table == nil {
		return 1
	}
	opt, ok := table.Lookup(name)
	if !ok {
		return 1
	}
	return opt.Multiplier
}

// Calculator prices rolled items with fixed economy settings.
type Calculator struct {
	BaseValue               float64
	LevelMultiplierPerLevel float64
}

// NewCalculator returns a Calculator with the given settings.
func NewCalculator(baseValue, levelMultiplierPerLevel float64) *Calculator {
	return &Calculator{BaseValue: baseValue, LevelMultiplierPerLevel: levelMultiplierPerLevel}
}

// ItemValue prices an item. tables maps category to its option table;
// categories missing from tables contribute a multiplier of 1.
func (c *Calculator) ItemValue(attributes map[string]string, tables map[string]*domain.OptionTable, enchantMultipliers []float64, level int) float64 {
	multipliers := make([]float64, 0, len(attributes))
	for category, name := range attributes {
		multipliers = append(multipliers, MultiplierFor(tables[category], name))
	}
	return ComputeValue(Input{
		BaseValue:                   c.BaseValue,
		OptionMultipliers:           multipliers,
		EnchantmentValueMultipliers: enchantMultipliers,
		ItemLevel:                   level,
		LevelMultiplierPerLevel:     c.LevelMultiplierPerLevel,
	})
}

// Format renders a value with magnitude suffixes, e.g. "$1.50k".
func Format(value float64) string {
	return utils.FormatMoney(value)
}
