package domain

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// Color is an RGBA display color attached to an option.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// White is used when a table entry has no color.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// ParseColor parses "RRGGBB", "#RRGGBB" or "#RRGGBBAA". A missing alpha
// channel is fully opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return White, nil
	}
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("%w: color %q must have 6 or 8 hex digits", ErrInvalidInput, s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidInput, s, err)
	}
	c := Color{R: raw[0], G: raw[1], B: raw[2], A: 255}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// Hex renders the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Option is one entry of an attribute table. BaseOdds reads as "1 in BaseOdds".
type Option struct {
	Name       string  `json:"name"`
	BaseOdds   float64 `json:"base_odds"`
	Multiplier float64 `json:"multiplier"`
	Color      Color   `json:"color"`
}

// OptionTable is the ordered, immutable option list of one category.
// Build it with NewOptionTable; the zero value is not usable.
type OptionTable struct {
	category string
	options  []Option
	index    map[string]int
	minOdds  float64
}

// NewOptionTable validates options and returns a read-only table.
// Order is preserved; it decides tie-breaks during redistribution.
func NewOptionTable(category string, options []Option) (*OptionTable, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category name is empty", ErrInvalidTable)
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: category %q has no options", ErrInvalidTable, category)
	}

	t := &OptionTable{
		category: category,
		options:  make([]Option, len(options)),
		index:    make(map[string]int, len(options)),
		minOdds:  math.Inf(1),
	}
	copy(t.options, options)

	for i, opt := range t.options {
		if strings.TrimSpace(opt.Name) == "" {
			return nil, fmt.Errorf("%w: category %q option %d has no name", ErrInvalidTable, category, i)
		}
		key := strings.ToLower(opt.Name)
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("%w: %q in category %q", ErrDuplicateOption, opt.Name, category)
		}
		if math.IsNaN(opt.BaseOdds) || math.IsInf(opt.BaseOdds, 0) || opt.BaseOdds < 1 {
			return nil, fmt.Errorf("%w: %q in category %q has odds %v", ErrInvalidOdds, opt.Name, category, opt.BaseOdds)
		}
		if math.IsNaN(opt.Multiplier) || math.IsInf(opt.Multiplier, 0) || opt.Multiplier < 0 {
			return nil, fmt.Errorf("%w: %q in category %q has multiplier %v", ErrInvalidTable, opt.Name, category, opt.Multiplier)
		}
		t.index[key] = i
		if opt.BaseOdds < t.minOdds {
			t.minOdds = opt.BaseOdds
		}
	}

	return t, nil
}

// Category returns the category this table belongs to.
func (t *OptionTable) Category() string { return t.category }

// Len returns the number of options.
func (t *OptionTable) Len() int { return len(t.options) }

// At returns the option at position i in table order.
func (t *OptionTable) At(i int) Option { return t.options[i] }

// Options returns a copy of the options in table order.
func (t *OptionTable) Options() []Option {
	out := make([]Option, len(t.options))
	copy(out, t.options)
	return out
}

// Lookup finds an option by name, ignoring case.
func (t *OptionTable) Lookup(name string) (Option, bool) {
	i, ok := t.index[strings.ToLower(name)]
	if !ok {
		return Option{}, false
	}
	return t.options[i], true
}

// MinBaseOdds is the smallest base odds in the table.
func (t *OptionTable) MinBaseOdds() float64 { return t.minOdds }
