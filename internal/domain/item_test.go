package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolledItem_Summary(t *testing.T) {
	item := &RolledItem{
		Attributes: map[string]string{
			CategoryMold:    "Gold",
			CategoryQuality: "Fine",
			CategoryClass:   "Cool",
			CategoryRarity:  "Rare+",
		},
		Enchantments: []Enchantment{
			{Type: EnchantmentSharpness, Level: 2},
			{Type: EnchantmentPower, Level: 1},
		},
		Level: 3,
	}

	assert.Equal(t, "[RARE+] Gold Lvl3 [Sharpness II, Power I] | Quality: Fine | Class: Cool", item.Summary())
}

func TestRolledItem_SummaryWithoutEnchantments(t *testing.T) {
	item := &RolledItem{
		Attributes: map[string]string{CategoryMold: "Normal", CategoryRarity: "Basic"},
		Level:      1,
	}

	assert.Equal(t, "[BASIC] Normal Lvl1 | Quality:  | Class: ", item.Summary())
	assert.Equal(t, "", (*RolledItem)(nil).Attribute(CategoryMold))
}
