package odds

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Report renders a debug table of every option's effective odds and draw
// probability. It is meant for balancing, not for game logic.
func Report(s Snapshot) string {
	var sb strings.Builder
	total := s.TotalWeight()

	printer.Fprintf(&sb, "Odds report: %s (level %d, factor %.2f)\n", s.category, s.level, s.factor)
	printer.Fprintf(&sb, "%-4s %-16s %16s %12s %18s\n", "#", "Option", "Odds", "Chance", "Effective 1 in")
	for i, e := range s.entries {
		if e.Retired {
			printer.Fprintf(&sb, "%-4d %-16s %16s %12s %18s\n", i+1, e.Name, "retired", "-", "-")
			continue
		}
		chance, oneIn := 0.0, 0.0
		if total > 0 {
			chance = e.Weight() / total * 100
			oneIn = total / e.Weight()
		}
		marker := ""
		if e.Capped {
			marker = " (capped)"
		}
		printer.Fprintf(&sb, "%-4d %-16s %16.2f %11.4f%% %18.2f%s\n", i+1, e.Name, e.Odds, chance, oneIn, marker)
	}
	printer.Fprintf(&sb, "Drawable: %d/%d  Capped: %d  Retired: %d\n",
		s.Drawable(), s.Len(), len(s.CappedNames()), len(s.RetiredNames()))
	return sb.String()
}

// CompareReport lists each option's draw probability before and after an
// upgrade, matching entries by name.
func CompareReport(base, upgraded Snapshot) string {
	var sb strings.Builder
	printer.Fprintf(&sb, "Odds comparison: %s (level %d -> %d)\n", upgraded.category, base.level, upgraded.level)
	printer.Fprintf(&sb, "%-16s %12s %12s %6s\n", "Option", "Before", "After", "")
	for _, e := range upgraded.entries {
		before := base.Probability(e.Name)
		after := upgraded.Probability(e.Name)
		arrow := "="
		switch {
		case after > before:
			arrow = "up"
		case after < before:
			arrow = "down"
		}
		printer.Fprintf(&sb, "%-16s %11.4f%% %11.4f%% %6s\n", e.Name, before, after, arrow)
	}
	return sb.String()
}
