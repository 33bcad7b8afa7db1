// Package roller draws one option per attribute category using the
// effective odds of the category's current upgrade level.
package roller

import (
	"fmt"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/odds"
	"github.com/osse101/SwordForge_Go/internal/sampler"
)

// SnapshotSource supplies the current effective odds per category.
// *upgrade.Ledger implements it.
type SnapshotSource interface {
	Categories() []string
	Snapshot(category string) (odds.Snapshot, error)
}

// Roller draws attribute options. It never mutates tables or levels.
type Roller struct {
	snapshots SnapshotSource
	src       sampler.Source
}

// NewRoller creates a Roller. A nil src uses sampler.Default.
func NewRoller(snapshots SnapshotSource, src sampler.Source) *Roller {
	if src == nil {
		src = sampler.Default
	}
	return &Roller{snapshots: snapshots, src: src}
}

// Roll draws one option name for category. Retired options are never
// returned.
func (r *Roller) Roll(category string) (string, error) {
	snap, err := r.snapshots.Snapshot(category)
	if err != nil {
		return "", err
	}
	return r.rollSnapshot(snap)
}

func (r *Roller) rollSnapshot(snap odds.Snapshot) (string, error) {
	if snap.Len() == 0 {
		return "", fmt.Errorf("%w: category %q has no options", domain.ErrInvalidTable, snap.Category())
	}
	entries := snap.Entries()
	weighted := make([]sampler.Weighted[string], len(entries))
	for i, e := range entries {
		weighted[i] = sampler.Weighted[string]{Value: e.Name, Weight: e.Weight()}
	}
	return sampler.Pick(r.src, weighted), nil
}

// RollAll draws one option for every category, in category order.
func (r *Roller) RollAll() (map[string]string, error) {
	categories := r.snapshots.Categories()
	out := make(map[string]string, len(categories))
	for _, c := range categories {
		name, err := r.Roll(c)
		if err != nil {
			return nil, fmt.Errorf("failed to roll %s: %w", c, err)
		}
		out[c] = name
	}
	return out, nil
}
