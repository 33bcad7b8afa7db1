package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// moneySuffixes are applied per factor of 1000.
var moneySuffixes = []string{"", "k", "M", "B", "T", "Qd", "Qn"}

// chanceSuffixes maps the magnitude suffixes accepted in table data.
// Longer suffixes come first so "Qd" is not read as a unit-less number.
var chanceSuffixes = []struct {
	suffix string
	factor float64
}{
	{"qd", 1e15},
	{"k", 1e3},
	{"m", 1e6},
	{"b", 1e9},
	{"t", 1e12},
}

// FormatMoney renders an amount like "$1.50k" or "$12.00B".
// Negative and non-finite amounts render as "$0.00".
func FormatMoney(amount float64) string {
	if !IsFinite(amount) || amount <= 0 {
		return "$0.00"
	}
	i := 0
	for amount >= 1000 && i < len(moneySuffixes)-1 {
		amount /= 1000
		i++
	}
	return fmt.Sprintf("$%.2f%s", amount, moneySuffixes[i])
}

// ParseChance parses a "1 in N" chance such as "200", "1.5K", "3M" or "1.85Qd".
// Thousands separators are ignored.
func ParseChance(s string) (float64, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if raw == "" {
		return 0, fmt.Errorf("empty chance value")
	}

	factor := 1.0
	lower := strings.ToLower(raw)
	for _, cs := range chanceSuffixes {
		if strings.HasSuffix(lower, cs.suffix) {
			factor = cs.factor
			raw = raw[:len(raw)-len(cs.suffix)]
			break
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chance value %q: %w", s, err)
	}
	v *= factor
	if !IsFinite(v) {
		return 0, fmt.Errorf("chance value %q is out of range", s)
	}
	return v, nil
}

// FormatOneIn renders odds compactly, e.g. 1500 -> "1.5K".
func FormatOneIn(odds float64) string {
	if !IsFinite(odds) {
		return "never"
	}
	suffixes := []string{"", "K", "M", "B", "T", "Qd"}
	i := 0
	for math.Abs(odds) >= 1000 && i < len(suffixes)-1 {
		odds /= 1000
		i++
	}
	return strconv.FormatFloat(math.Round(odds*100)/100, 'f', -1, 64) + suffixes[i]
}
