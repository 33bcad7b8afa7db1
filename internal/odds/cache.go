package odds

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/SwordForge_Go/internal/domain"
)

// DefaultCacheSize bounds the number of memoized snapshots.
const DefaultCacheSize = 1024

type cacheKey struct {
	table *domain.OptionTable
	level int
}

// Redistributor runs the cascade with a fixed improvement factor and
// memoizes snapshots per (table, level). It is safe for concurrent use.
type Redistributor struct {
	factor float64
	cache  *lru.Cache[cacheKey, Snapshot]
}

// NewRedistributor validates factor and sets up a snapshot cache holding
// at most cacheSize entries. A non-positive size uses DefaultCacheSize.
func NewRedistributor(factor float64, cacheSize int) (*Redistributor, error) {
	if err := ValidateImprovementFactor(factor); err != nil {
		return nil, err
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, Snapshot](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create odds cache: %w", err)
	}
	return &Redistributor{factor: factor, cache: cache}, nil
}

// Factor returns the improvement factor applied per level.
func (r *Redistributor) Factor() float64 { return r.factor }

// Snapshot returns the effective odds of table at level, computing them
// on a cache miss.
func (r *Redistributor) Snapshot(table *domain.OptionTable, level int) Snapshot {
	if level < 0 {
		level = 0
	}
	key := cacheKey{table: table, level: level}
	if snap, ok := r.cache.Get(key); ok {
		return snap
	}
	snap := Redistribute(table, level, r.factor)
	r.cache.Add(key, snap)
	return snap
}

// CachedSnapshots reports how many snapshots are memoized.
func (r *Redistributor) CachedSnapshots() int { return r.cache.Len() }

// Purge drops every memoized snapshot.
func (r *Redistributor) Purge() { r.cache.Purge() }
