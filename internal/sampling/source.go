// Package sampling provides owned random sources and the weighted choice
// primitive shared by every generation stage.
package sampling

import (
	"math"
	"math/rand/v2"
)

// Source is a random stream owned by exactly one worker.
type Source struct {
	r *rand.Rand
}

// NewSource creates a Source from a seed and a stream selector.
func NewSource(seed, stream uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, stream))}
}

// Stream returns the source for one record in one stage. The same
// (seed, stage, record) triple always yields the same sequence, independent of
// worker scheduling.
func Stream(seed int64, stage, record int) *Source {
	return NewSource(uint64(seed), uint64(stage)<<32|uint64(uint32(record)))
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Bernoulli returns true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return s.r.Float64() < p
}

// IntRange returns an int in [lo, hi], both inclusive.
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Uniform returns a float in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// Normal draws from N(mean, sd).
func (s *Source) Normal(mean, sd float64) float64 {
	return mean + sd*s.r.NormFloat64()
}

// Exponential draws from an exponential distribution with the given mean.
func (s *Source) Exponential(mean float64) float64 {
	return mean * s.r.ExpFloat64()
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// ClampFloat bounds v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
