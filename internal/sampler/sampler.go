// Package sampler draws one entry from a weighted list with a single
// uniform random number.
package sampler

import "math"

// Weighted pairs a value with its relative weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Pick returns one value with probability proportional to its weight.
//
// Negative and NaN weights count as zero, and a zero-weight entry is never
// chosen while any weight is positive. When every weight is zero the first
// value is returned. If rounding leaves the roll past the final cumulative
// weight, the last positive-weight value is returned. An empty list yields
// the zero value of T.
func Pick[T any](src Source, entries []Weighted[T]) T {
	var zero T
	if len(entries) == 0 {
		return zero
	}

	total := 0.0
	for _, e := range entries {
		total += clamp(e.Weight)
	}
	if total <= 0 {
		return entries[0].Value
	}

	roll := src.Float64() * total
	cumulative := 0.0
	last := 0
	for i, e := range entries {
		w := clamp(e.Weight)
		if w == 0 {
			continue
		}
		cumulative += w
		last = i
		if cumulative >= roll {
			return e.Value
		}
	}

	return entries[last].Value
}

// PickIndex is Pick over bare weights, returning the chosen position or -1
// for an empty slice.
func PickIndex(src Source, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	entries := make([]Weighted[int], len(weights))
	for i, w := range weights {
		entries[i] = Weighted[int]{Value: i, Weight: w}
	}
	return Pick(src, entries)
}

// Percentages returns each entry's share of the total weight, in percent.
// All zeros are returned when the total is not positive.
func Percentages[T any](entries []Weighted[T]) []float64 {
	out := make([]float64, len(entries))
	total := 0.0
	for _, e := range entries {
		total += clamp(e.Weight)
	}
	if total <= 0 {
		return out
	}
	for i, e := range entries {
		out[i] = clamp(e.Weight) / total * 100
	}
	return out
}

func clamp(w float64) float64 {
	if math.IsNaN(w) || w < 0 {
		return 0
	}
	return w
}
