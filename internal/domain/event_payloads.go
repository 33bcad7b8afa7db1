package domain

// ItemCraftedPayload is the payload of EventTypeItemCrafted
type ItemCraftedPayload struct {
	ItemID       string            `json:"item_id"`
	Attributes   map[string]string `json:"attributes"`
	Enchantments int               `json:"enchantments"`
	Value        float64           `json:"value"`
}

// ItemSoldPayload is the payload of EventTypeItemSold
type ItemSoldPayload struct {
	ItemID string  `json:"item_id"`
	Value  float64 `json:"value"`
	Auto   bool    `json:"auto"`
}

// UpgradePurchasedPayload is the payload of EventTypeUpgradePurchased
type UpgradePurchasedPayload struct {
	Category string  `json:"category"`
	Level    int     `json:"level"`
	Cost     float64 `json:"cost"`
}

// OptionRetiredPayload is the payload of EventTypeOptionRetired
type OptionRetiredPayload struct {
	Category string `json:"category"`
	Option   string `json:"option"`
	Level    int    `json:"level"`
}
