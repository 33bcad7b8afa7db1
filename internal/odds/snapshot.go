package odds

// Entry is the effective state of one option at a given level.
// A retired entry has Odds == 0 and is never drawn.
type Entry struct {
	Name     string  `json:"name"`
	BaseOdds float64 `json:"base_odds"`
	Odds     float64 `json:"odds"`
	Capped   bool    `json:"capped"`
	Retired  bool    `json:"retired"`
}

// Weight is the sampling weight of the entry: 1/Odds, or 0 when retired.
func (e Entry) Weight() float64 {
	if e.Retired || e.Odds <= 0 {
		return 0
	}
	return 1 / e.Odds
}

// Snapshot is the effective odds of every option of one table at one level,
// in table order. Snapshots are values and safe to share between goroutines.
type Snapshot struct {
	category string
	level    int
	factor   float64
	entries  []Entry
}

// Category returns the table category the snapshot was computed for.
func (s Snapshot) Category() string { return s.category }

// Level returns the upgrade level the snapshot was computed for.
func (s Snapshot) Level() int { return s.level }

// Factor returns the improvement factor used for the cascade.
func (s Snapshot) Factor() float64 { return s.factor }

// Len returns the number of entries, retired ones included.
func (s Snapshot) Len() int { return len(s.entries) }

// Entries returns a copy of all entries in table order.
func (s Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry looks up an entry by exact name.
func (s Snapshot) Entry(name string) (Entry, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Odds returns the effective "1 in X" odds of name, 0 when retired.
func (s Snapshot) Odds(name string) (float64, bool) {
	e, ok := s.Entry(name)
	return e.Odds, ok
}

// Weights returns the sampling weight of every entry in table order.
func (s Snapshot) Weights() []float64 {
	out := make([]float64, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Weight()
	}
	return out
}

// TotalWeight is the sum of all sampling weights.
func (s Snapshot) TotalWeight() float64 {
	total := 0.0
	for _, e := range s.entries {
		total += e.Weight()
	}
	return total
}

// Probability returns the chance of drawing name, in percent.
func (s Snapshot) Probability(name string) float64 {
	e, ok := s.Entry(name)
	total := s.TotalWeight()
	if !ok || total <= 0 {
		return 0
	}
	return e.Weight() / total * 100
}

// RetiredNames lists retired options in table order.
func (s Snapshot) RetiredNames() []string {
	var out []string
	for _, e := range s.entries {
		if e.Retired {
			out = append(out, e.Name)
		}
	}
	return out
}

// CappedNames lists capped options in table order.
func (s Snapshot) CappedNames() []string {
	var out []string
	for _, e := range s.entries {
		if e.Capped {
			out = append(out, e.Name)
		}
	}
	return out
}

// Drawable counts the options that can still be drawn.
func (s Snapshot) Drawable() int {
	n := 0
	for _, e := range s.entries {
		if !e.Retired {
			n++
		}
	}
	return n
}
