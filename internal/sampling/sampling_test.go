package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamIsReproducible(t *testing.T) {
	a := Stream(42, 3, 17)
	b := Stream(42, 3, 17)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	c := Stream(42, 3, 18)
	d := Stream(42, 3, 17)
	same := true
	for i := 0; i < 10; i++ {
		if c.Float64() != d.Float64() {
			same = false
		}
	}
	assert.False(t, same, "different records must get different streams")
}

func TestIntRangeInclusive(t *testing.T) {
	src := NewSource(1, 1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := src.IntRange(0, 3)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 5, src.IntRange(5, 5))
	assert.Equal(t, 5, src.IntRange(5, 2))
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]float64{0.4, 0.4, 0.1, 0.1, 0.1, 0.1, 0})
	require.NoError(t, err)
	sum := 0.0
	for _, w := range got {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 0.4/1.2, got[0], 1e-12)

	_, err = Normalize([]float64{0, 0})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	_, err = Normalize([]float64{1, -0.5})
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestChoiceNeverPicksZeroWeight(t *testing.T) {
	src := NewSource(7, 0)
	values := []string{"a", "b", "c"}
	for i := 0; i < 5000; i++ {
		v, err := Pick(src, values, []float64{2, 0, 1})
		require.NoError(t, err)
		assert.NotEqual(t, "b", v)
	}
}

func TestChoiceFollowsWeights(t *testing.T) {
	src := NewSource(11, 0)
	counts := map[string]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		// unnormalized on purpose
		v, err := Pick(src, []string{"x", "y"}, []float64{3, 1})
		require.NoError(t, err)
		counts[v]++
	}
	assert.InDelta(t, 0.75, float64(counts["x"])/n, 0.02)
}

func TestPickRejectsMismatchedLengths(t *testing.T) {
	_, err := Pick(NewSource(1, 1), []int{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	_, err = Uniformly(NewSource(1, 1), []int{})
	assert.ErrorIs(t, err, ErrInvalidWeights)
}
