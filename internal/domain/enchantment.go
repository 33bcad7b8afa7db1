package domain

import (
	"fmt"
	"strings"
)

// EnchantmentLevel is one row of the enchantment level table.
// Weight is the relative chance of this level being rolled.
type EnchantmentLevel struct {
	Level            int     `json:"level"`
	Weight           float64 `json:"weight"`
	ValueMultiplier  float64 `json:"value_multiplier"`
	DamageMultiplier float64 `json:"damage_multiplier"`
	HealthMultiplier float64 `json:"health_multiplier"`
}

// NeutralEnchantmentLevel returns the row used for levels missing from the table.
func NeutralEnchantmentLevel(level int) EnchantmentLevel {
	return EnchantmentLevel{
		Level:            level,
		ValueMultiplier:  1,
		DamageMultiplier: 1,
		HealthMultiplier: 1,
	}
}

// Enchantment is an enchantment instance on a rolled item.
type Enchantment struct {
	Type  string `json:"type"`
	Level int    `json:"level"`
}

// DisplayName renders e.g. "Sharpness IV".
func (e Enchantment) DisplayName() string {
	return fmt.Sprintf("%s %s", e.Type, ToRoman(e.Level))
}

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman converts a positive integer to Roman numerals. Non-positive
// values are returned as plain digits.
func ToRoman(n int) string {
	if n <= 0 {
		return fmt.Sprintf("%d", n)
	}
	var sb strings.Builder
	for _, rn := range romanNumerals {
		for n >= rn.value {
			sb.WriteString(rn.symbol)
			n -= rn.value
		}
	}
	return sb.String()
}
