package domain

// Attribute categories rolled for every crafted item
const (
	CategoryMold    = "mold"
	CategoryQuality = "quality"
	CategoryClass   = "class"
	CategoryRarity  = "rarity"
)

// Enchantment types
const (
	EnchantmentSharpness  = "Sharpness"
	EnchantmentPower      = "Power"
	EnchantmentResistance = "Resistance"
)

// Enchantment bounds
const (
	MinEnchantments     = 1
	MaxEnchantments     = 3
	MaxEnchantmentLevel = 36
)

// Economy defaults
const (
	DefaultBaseItemValue           = 10.0
	DefaultLevelMultiplierPerLevel = 0.01
	DefaultImprovementFactor       = 0.91
	DefaultUpgradeMaxLevel         = 100
	DefaultUpgradeCostMultiplier   = 1.15
)

// Player progression defaults
const (
	StartingPlayerLevel = 1
	BaseXPToNextLevel   = 100
	XPIncreasePerLevel  = 20
	XPPerItemSold       = 10
)
