package interpolate

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// EvalAll evaluates in at all the given x values. If an output array is given,
// the output is written to that array (the array is still returned as a
// convenience).
//
// If more than one output array is provided, only the first is used.
func EvalAll(
	in Interpolator, s *SampleSet, xs []float64, out ...[]float64,
) ([]float64, error) {
	return mapAll(in.Interpolate, s, xs, out)
}

// DerivAll is the same as EvalAll, but computes first derivatives.
func DerivAll(
	in Interpolator, s *SampleSet, xs []float64, out ...[]float64,
) ([]float64, error) {
	return mapAll(in.FirstDerivative, s, xs, out)
}

// SensitivityAll returns the node sensitivities of in at every x value. Row i
// of the result corresponds to xs[i].
func SensitivityAll(
	in Interpolator, s *SampleSet, xs []float64,
) ([][]float64, error) {
	out := make([][]float64, len(xs))
	for i, x := range xs {
		row, err := in.NodeSensitivities(s, x)
		if err != nil {
			return nil, fmt.Errorf("xs[%d] = %g: %w", i, x, err)
		}
		out[i] = row
	}
	return out, nil
}

// ParallelEvalAll is the same as EvalAll, but splits xs into contiguous
// chunks which are evaluated by up to workers goroutines. workers < 1 is
// treated as 1.
func ParallelEvalAll(
	in Interpolator, s *SampleSet, xs []float64, workers int,
	out ...[]float64,
) ([]float64, error) {
	res, err := outputArray(xs, out)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(xs) + workers - 1) / workers
	if chunk == 0 {
		return res, nil
	}

	g := new(errgroup.Group)
	for start := 0; start < len(xs); start += chunk {
		end := start + chunk
		if end > len(xs) {
			end = len(xs)
		}

		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				y, err := in.Interpolate(s, xs[i])
				if err != nil {
					return fmt.Errorf("xs[%d] = %g: %w", i, xs[i], err)
				}
				res[i] = y
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func mapAll(
	f func(*SampleSet, float64) (float64, error),
	s *SampleSet, xs []float64, out [][]float64,
) ([]float64, error) {
	res, err := outputArray(xs, out)
	if err != nil {
		return nil, err
	}

	for i, x := range xs {
		y, err := f(s, x)
		if err != nil {
			return nil, fmt.Errorf("xs[%d] = %g: %w", i, x, err)
		}
		res[i] = y
	}
	return res, nil
}

func outputArray(xs []float64, out [][]float64) ([]float64, error) {
	if len(out) == 0 {
		return make([]float64, len(xs)), nil
	} else if len(out[0]) != len(xs) {
		return nil, invalidInput(
			"len(out) = %d, but len(xs) = %d", len(out[0]), len(xs),
		)
	}
	return out[0], nil
}
