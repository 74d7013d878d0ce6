package interpolate

import (
	"math"
)

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a piecewise-linear interpolation kernel.
//
// Outside the range of a SampleSet, Linear extends the interpolant in two
// different ways:
//
//   - Below the first key, the first segment is extended linearly.
//   - At or above the last key, the last value is held constant.
//
// Neither case is an error for Interpolate or NodeSensitivities. Derivatives
// are stricter: FirstDerivative fails for points strictly above the last key,
// since a slope there is not defined by the samples.
type Linear struct{}

// Interpolate returns the piecewise-linear interpolation of s at x.
func (Linear) Interpolate(s *SampleSet, x float64) (float64, error) {
	if err := checkQuery(s, x); err != nil {
		return 0, err
	}

	b := s.BoundedValues(x)
	if !b.HasHigher {
		return b.LowerValue, nil
	}

	x1, x2 := b.LowerKey, b.HigherKey
	y1, y2 := b.LowerValue, b.HigherValue
	return y1 + (x-x1)/(x2-x1)*(y2-y1), nil
}

// FirstDerivative returns the slope of the segment containing x. At exactly
// the last key this is the slope of the final segment, or 0 if s only has
// a single point. Points strictly above the last key return an
// *ExtrapolationNotSupportedError.
func (Linear) FirstDerivative(s *SampleSet, x float64) (float64, error) {
	if err := checkQuery(s, x); err != nil {
		return 0, err
	}

	b := s.BoundedValues(x)
	if !b.HasHigher {
		last := s.LastKey()
		if x > last {
			return 0, &ExtrapolationNotSupportedError{X: x, LastKey: last}
		}

		n := s.Size()
		if n < 2 {
			return 0, nil
		}
		return (s.ys[n-1] - s.ys[n-2]) / (s.xs[n-1] - s.xs[n-2]), nil
	}

	return (b.HigherValue - b.LowerValue) / (b.HigherKey - b.LowerKey), nil
}

// NodeSensitivities returns d Interpolate(s, x) / d y_i for every sample i.
// Inside a segment [x1, x2] the two non-zero weights are (x2 - x)/(x2 - x1)
// and (x - x1)/(x2 - x1). At or above the last key the result is the unit
// vector on the last sample.
//
// The weights always sum to 1.
func (Linear) NodeSensitivities(s *SampleSet, x float64) ([]float64, error) {
	if err := checkQuery(s, x); err != nil {
		return nil, err
	}

	out := make([]float64, s.Size())
	b := s.BoundedValues(x)
	if !b.HasHigher {
		out[len(out)-1] = 1
		return out, nil
	}

	a := (b.HigherKey - x) / (b.HigherKey - b.LowerKey)
	out[b.LowerIndex] = a
	out[b.LowerIndex+1] = 1 - a
	return out, nil
}

// BuildDataBundle is equivalent to NewSampleSet.
func (Linear) BuildDataBundle(xs, ys []float64) (*SampleSet, error) {
	return NewSampleSet(xs, ys)
}

// BuildFromSortedArrays is equivalent to NewSortedSampleSet.
func (Linear) BuildFromSortedArrays(xs, ys []float64) (*SampleSet, error) {
	return NewSortedSampleSet(xs, ys)
}

func checkQuery(s *SampleSet, x float64) error {
	if s == nil {
		return invalidInput("nil SampleSet")
	} else if math.IsNaN(x) {
		return invalidInput("query point is NaN")
	}
	return nil
}
