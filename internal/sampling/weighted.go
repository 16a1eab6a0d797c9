package sampling

import (
	"errors"
	"fmt"
)

// ErrInvalidWeights is returned when a weighted draw has no positive mass or a
// negative weight.
var ErrInvalidWeights = errors.New("invalid weights")

// Option is one labelled outcome of a weighted draw.
type Option[T any] struct {
	Value  T
	Weight float64
}

// Options pairs values with weights positionally.
func Options[T any](values []T, weights []float64) ([]Option[T], error) {
	if len(values) != len(weights) {
		return nil, fmt.Errorf("%w: %d values, %d weights", ErrInvalidWeights, len(values), len(weights))
	}
	opts := make([]Option[T], len(values))
	for i := range values {
		opts[i] = Option[T]{Value: values[i], Weight: weights[i]}
	}
	return opts, nil
}

// Normalize rescales weights so they sum to 1.
func Normalize(weights []float64) ([]float64, error) {
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v", ErrInvalidWeights, w)
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: total weight is zero", ErrInvalidWeights)
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / total
	}
	return out, nil
}

// Choice draws one option. Weights are renormalized before every draw.
func Choice[T any](src *Source, opts []Option[T]) (T, error) {
	var zero T
	weights := make([]float64, len(opts))
	for i, o := range opts {
		weights[i] = o.Weight
	}
	probs, err := Normalize(weights)
	if err != nil {
		return zero, err
	}

	u := src.Float64()
	acc := 0.0
	last := -1
	for i, p := range probs {
		if p == 0 {
			continue
		}
		last = i
		acc += p
		if u < acc {
			return opts[i].Value, nil
		}
	}
	// rounding can leave acc just under 1
	return opts[last].Value, nil
}

// Pick draws from values with positional weights.
func Pick[T any](src *Source, values []T, weights []float64) (T, error) {
	opts, err := Options(values, weights)
	if err != nil {
		var zero T
		return zero, err
	}
	return Choice(src, opts)
}

// Uniformly draws one element with equal weight.
func Uniformly[T any](src *Source, values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: empty choice set", ErrInvalidWeights)
	}
	return values[src.IntRange(0, len(values)-1)], nil
}
