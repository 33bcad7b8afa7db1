package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/SwordForge_Go/internal/utils"
)

// Chance is a "1 in N" value that accepts either a JSON number or a string
// with a magnitude suffix ("1.5K", "200M", "1.85Qd").
type Chance float64

// UnmarshalJSON implements json.Unmarshaler.
func (c *Chance) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*c = Chance(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("chance must be a number or string: %w", err)
	}
	v, err := utils.ParseChance(s)
	if err != nil {
		return err
	}
	*c = Chance(v)
	return nil
}

// MarshalJSON writes the chance in compact suffix form.
func (c Chance) MarshalJSON() ([]byte, error) {
	return json.Marshal(utils.FormatOneIn(float64(c)))
}
