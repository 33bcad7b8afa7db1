package player

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwordForge_Go/internal/domain"
)

func TestWallet(t *testing.T) {
	w := NewWallet(-50)
	assert.Equal(t, 0.0, w.Balance())

	assert.Equal(t, 100.0, w.Add(100))
	require.NoError(t, w.Spend(40))
	assert.Equal(t, 60.0, w.Balance())

	err := w.Spend(60.01)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 60.0, w.Balance())

	assert.ErrorIs(t, w.Spend(-1), domain.ErrInvalidInput)

	assert.Equal(t, 0.0, w.Add(-1000))
}

func TestWallet_Concurrent(t *testing.T) {
	w := NewWallet(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Add(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, 100.0, w.Balance())
}

func TestProgress_AddXP(t *testing.T) {
	p := NewProgress()
	assert.Equal(t, Snapshot{Level: 1, XP: 0, XPToNext: 100}, p.Snapshot())

	assert.Equal(t, 0, p.AddXP(90))
	assert.Equal(t, 1, p.AddXP(10))
	assert.Equal(t, Snapshot{Level: 2, XP: 0, XPToNext: 120}, p.Snapshot())

	// 120 for level 3, 140 for level 4, 20 left over
	assert.Equal(t, 2, p.AddXP(280))
	assert.Equal(t, Snapshot{Level: 4, XP: 20, XPToNext: 160}, p.Snapshot())

	assert.Equal(t, 0, p.AddXP(-5))
	assert.Equal(t, 4, p.Level())
}
