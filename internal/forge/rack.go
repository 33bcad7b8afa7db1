package forge

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SwordForge_Go/internal/domain"
)

// rackEntry is one unsold item. claimed flips exactly once, by whichever
// of a manual sale or the eviction callback gets there first.
type rackEntry struct {
	item    *domain.RolledItem
	claimed atomic.Bool
}

// sellRack holds crafted items until they are sold. Items left longer than
// the countdown, or pushed out when the rack is full, are handed to
// onExpire.
type sellRack struct {
	lru *expirable.LRU[string, *rackEntry]
}

func newSellRack(size int, countdown time.Duration, onExpire func(*domain.RolledItem)) *sellRack {
	return &sellRack{
		lru: expirable.NewLRU[string, *rackEntry](size, func(_ string, e *rackEntry) {
			if e.claimed.CompareAndSwap(false, true) {
				onExpire(e.item)
			}
		}, countdown),
	}
}

func (r *sellRack) put(item *domain.RolledItem) {
	r.lru.Add(item.ID, &rackEntry{item: item})
}

// claim removes id from the rack and returns its item, or false when the
// item is absent or already sold.
func (r *sellRack) claim(id string) (*domain.RolledItem, bool) {
	e, ok := r.lru.Peek(id)
	if !ok || !e.claimed.CompareAndSwap(false, true) {
		return nil, false
	}
	r.lru.Remove(id)
	return e.item, true
}

func (r *sellRack) items() []*domain.RolledItem {
	entries := r.lru.Values()
	out := make([]*domain.RolledItem, 0, len(entries))
	for _, e := range entries {
		if !e.claimed.Load() {
			out = append(out, e.item)
		}
	}
	return out
}

func (r *sellRack) len() int { return r.lru.Len() }

// drain evicts everything, auto-selling what is left.
func (r *sellRack) drain() { r.lru.Purge() }
