package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RolledItem is the output of one craft. It is not modified after creation.
type RolledItem struct {
	ID           string            `json:"id"`
	Attributes   map[string]string `json:"attributes"`
	Enchantments []Enchantment     `json:"enchantments"`
	Level        int               `json:"level"`
	Value        float64           `json:"value"`
	CraftedAt    time.Time         `json:"crafted_at"`
}

// Attribute returns the option rolled for category, or "" when absent.
func (r *RolledItem) Attribute(category string) string {
	if r == nil || r.Attributes == nil {
		return ""
	}
	return r.Attributes[category]
}

// Summary renders a one-line description of the item, e.g.
// "[RARE+] Gold Lvl3 [Sharpness II] | Quality: Fine | Class: Cool".
func (r *RolledItem) Summary() string {
	upper := cases.Upper(language.English)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s Lvl%d", upper.String(r.Attribute(CategoryRarity)), r.Attribute(CategoryMold), r.Level)

	if len(r.Enchantments) > 0 {
		names := make([]string, len(r.Enchantments))
		for i, e := range r.Enchantments {
			names[i] = e.DisplayName()
		}
		fmt.Fprintf(&sb, " [%s]", strings.Join(names, ", "))
	}

	fmt.Fprintf(&sb, " | Quality: %s | Class: %s", r.Attribute(CategoryQuality), r.Attribute(CategoryClass))
	return sb.String()
}
