// Package player holds the single player's wallet and level progression.
package player

import (
	"fmt"
	"math"
	"sync"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/utils"
)

// Wallet holds the player's money. The balance never drops below zero.
type Wallet struct {
	mu      sync.Mutex
	balance float64
}

// NewWallet returns a wallet holding start (clamped to zero).
func NewWallet(start float64) *Wallet {
	return &Wallet{balance: utils.ClampNonNegative(start)}
}

// Balance returns the current balance.
func (w *Wallet) Balance() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Add credits amount and returns the new balance. Negative amounts are
// debited but never take the balance below zero.
func (w *Wallet) Add(amount float64) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if math.IsNaN(amount) {
		return w.balance
	}
	w.balance = utils.ClampNonNegative(w.balance + amount)
	return w.balance
}

// Spend debits amount if the balance covers it.
func (w *Wallet) Spend(amount float64) error {
	if math.IsNaN(amount) || amount < 0 {
		return fmt.Errorf("%w: cannot spend %v", domain.ErrInvalidInput, amount)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.balance < amount {
		return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientFunds, utils.FormatMoney(amount), utils.FormatMoney(w.balance))
	}
	w.balance -= amount
	return nil
}

// Progress tracks the player's level. Each level needs XPIncreasePerLevel
// more XP than the previous one.
type Progress struct {
	mu          sync.Mutex
	level       int
	xp          int
	xpToNext    int
	baseXP      int
	xpIncrement int
}

// NewProgress starts a player at level 1 with the default XP curve.
func NewProgress() *Progress {
	return &Progress{
		level:       domain.StartingPlayerLevel,
		xpToNext:    domain.BaseXPToNextLevel,
		baseXP:      domain.BaseXPToNextLevel,
		xpIncrement: domain.XPIncreasePerLevel,
	}
}

// Snapshot is a consistent view of the player's progression.
type Snapshot struct {
	Level    int `json:"level"`
	XP       int `json:"xp"`
	XPToNext int `json:"xp_to_next"`
}

// Level returns the current level.
func (p *Progress) Level() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Snapshot returns level and XP together.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{Level: p.level, XP: p.xp, XPToNext: p.xpToNext}
}

// AddXP adds amount XP, levelling up as many times as it covers, and
// returns the number of levels gained.
func (p *Progress) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.xp += amount
	gained := 0
	for p.xp >= p.xpToNext {
		p.xp -= p.xpToNext
		p.level++
		gained++
		p.xpToNext = p.baseXP + (p.level-1)*p.xpIncrement
	}
	return gained
}
