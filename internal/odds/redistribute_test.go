package odds

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwordForge_Go/internal/domain"
)

func newTable(t *testing.T, odds ...float64) *domain.OptionTable {
	t.Helper()
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	opts := make([]domain.Option, len(odds))
	for i, o := range odds {
		opts[i] = domain.Option{Name: names[i], BaseOdds: o, Multiplier: 1}
	}
	table, err := domain.NewOptionTable("test", opts)
	require.NoError(t, err)
	return table
}

func TestRedistribute_LevelZeroKeepsBaseOdds(t *testing.T) {
	snap := Redistribute(newTable(t, 1, 10, 100), 0, 0.9)

	for _, name := range []string{"A", "B", "C"} {
		e, ok := snap.Entry(name)
		require.True(t, ok)
		assert.Equal(t, e.BaseOdds, e.Odds)
		assert.False(t, e.Capped)
		assert.False(t, e.Retired)
	}
	assert.Equal(t, 3, snap.Drawable())
}

func TestRedistribute_CascadeScenario(t *testing.T) {
	table := newTable(t, 1, 10, 100)

	t.Run("before B catches up nothing is retired", func(t *testing.T) {
		snap := Redistribute(table, 21, 0.9)
		assert.Empty(t, snap.RetiredNames())
		b, _ := snap.Odds("B")
		assert.InDelta(t, 10*math.Pow(0.9, 21), b, 1e-9)
		a, _ := snap.Odds("A")
		assert.Equal(t, 1.0, a)
	})

	t.Run("B is capped to the floor and A retires", func(t *testing.T) {
		snap := Redistribute(table, 22, 0.9)
		assert.Equal(t, []string{"A"}, snap.RetiredNames())
		assert.Equal(t, []string{"B"}, snap.CappedNames())

		b, _ := snap.Odds("B")
		assert.Equal(t, 1.0, b)
		a, _ := snap.Odds("A")
		assert.Equal(t, 0.0, a)
		c, _ := snap.Odds("C")
		assert.InDelta(t, 100*math.Pow(0.9, 22), c, 1e-9)

		weights := snap.Weights()
		assert.Equal(t, 0.0, weights[0])
		assert.Equal(t, 1.0, weights[1])
	})

	t.Run("B stays frozen while C improves", func(t *testing.T) {
		snap := Redistribute(table, 40, 0.9)
		b, _ := snap.Odds("B")
		assert.Equal(t, 1.0, b)
		c, _ := snap.Odds("C")
		assert.InDelta(t, 100*math.Pow(0.9, 40), c, 1e-9)
		assert.Equal(t, 2, snap.Drawable())
	})

	t.Run("last option is never retired", func(t *testing.T) {
		snap := Redistribute(table, 500, 0.9)
		assert.Equal(t, []string{"A", "B"}, snap.RetiredNames())
		assert.Equal(t, 1, snap.Drawable())
		c, _ := snap.Odds("C")
		assert.Equal(t, 1.0, c)
	})
}

func TestRedistribute_EqualOddsTieBreaksByTableOrder(t *testing.T) {
	snap := Redistribute(newTable(t, 1, 1, 1), 1, 0.91)

	assert.Equal(t, []string{"A"}, snap.RetiredNames())
	assert.Equal(t, []string{"B", "C"}, snap.CappedNames())
	assert.Equal(t, 2, snap.Drawable())

	later := Redistribute(newTable(t, 1, 1, 1), 100, 0.91)
	assert.Equal(t, []string{"A"}, later.RetiredNames())
}

func TestRedistribute_FloorAboveOneCapsWithoutRetiring(t *testing.T) {
	snap := Redistribute(newTable(t, 5, 50), 100, 0.91)

	assert.Empty(t, snap.RetiredNames())
	b, _ := snap.Odds("B")
	assert.Equal(t, 5.0, b)
	assert.InDelta(t, 50.0, snap.Probability("A"), 1e-9)
}

func TestRedistribute_SingleOption(t *testing.T) {
	snap := Redistribute(newTable(t, 1), 1000, 0.5)
	assert.Equal(t, 1, snap.Drawable())
	assert.Empty(t, snap.RetiredNames())
	assert.Equal(t, 100.0, snap.Probability("A"))
}

func TestRedistribute_NegativeLevelAndBadFactor(t *testing.T) {
	table := newTable(t, 1, 10)

	snap := Redistribute(table, -3, 0.9)
	assert.Equal(t, 0, snap.Level())
	b, _ := snap.Odds("B")
	assert.Equal(t, 10.0, b)

	fallback := Redistribute(table, 5, 1.5)
	assert.Equal(t, domain.DefaultImprovementFactor, fallback.Factor())
}

func TestValidateImprovementFactor(t *testing.T) {
	for _, k := range []float64{0, 1, -0.5, 1.2, math.NaN()} {
		assert.ErrorIs(t, ValidateImprovementFactor(k), domain.ErrInvalidInput, "k=%v", k)
	}
	assert.NoError(t, ValidateImprovementFactor(0.91))
}

func TestRedistribute_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rnd.Intn(8)
		odds := make([]float64, n)
		odds[0] = 1
		for i := 1; i < n; i++ {
			odds[i] = 1 + rnd.Float64()*math.Pow(10, float64(rnd.Intn(8)))
		}
		table := newTable(t, odds...)
		k := 0.5 + rnd.Float64()*0.45

		prev := Redistribute(table, 0, k)
		for level := 1; level <= 150; level++ {
			snap := Redistribute(table, level, k)

			// At least one survivor
			require.GreaterOrEqual(t, snap.Drawable(), 1)
			require.LessOrEqual(t, len(snap.RetiredNames()), n-1)

			// Retired and capped sets only grow
			assert.Subset(t, snap.RetiredNames(), prev.RetiredNames())
			assert.Subset(t, snap.CappedNames(), prev.CappedNames())

			// Determinism
			require.Equal(t, snap, Redistribute(table, level, k))

			// Order among never-capped options is preserved
			entries := snap.Entries()
			for i := range entries {
				for j := range entries {
					a, b := entries[i], entries[j]
					if a.Capped || b.Capped || a.Retired || b.Retired {
						continue
					}
					if a.BaseOdds < b.BaseOdds {
						assert.LessOrEqual(t, a.Odds, b.Odds)
					}
				}
			}

			prev = snap
		}
	}
}

func TestRedistribute_EarlyExitMatchesFullRun(t *testing.T) {
	table := newTable(t, 1, 2, 3)
	converged := Redistribute(table, 200, 0.9)
	further := Redistribute(table, 400, 0.9)
	assert.Equal(t, converged.Entries(), further.Entries())
}
