/*package linterp runs one-dimensional interpolation kernels over lists of
query points and collects the results into Reports.
*/
package linterp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phil-mansfield/linterp/math/interpolate"
)

var kernels = map[string]interpolate.Interpolator{
	"Linear": interpolate.Linear{},
}

// KernelByName returns the registered kernel with the given name. Names are
// case-insensitive.
func KernelByName(name string) (interpolate.Interpolator, error) {
	for k, in := range kernels {
		if strings.EqualFold(k, strings.TrimSpace(name)) {
			return in, nil
		}
	}
	return nil, fmt.Errorf(
		"Kernel '%s' not recognized. Recognized kernels are: %s.",
		name, strings.Join(KernelNames(), ", "),
	)
}

// KernelNames returns the names of all registered kernels, sorted.
func KernelNames() []string {
	names := make([]string, 0, len(kernels))
	for k := range kernels {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ParseMode converts a case-insensitive mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	name = strings.TrimSpace(name)
	for _, m := range []Mode{Value, Derivative, Sensitivity} {
		if strings.EqualFold(string(m), name) {
			return m, nil
		}
	}
	return "", fmt.Errorf(
		"Mode '%s' not recognized. Must be one of [%s | %s | %s].",
		name, Value, Derivative, Sensitivity,
	)
}

// Evaluate computes mode at each of xs and returns a Report. Queries which
// fail, such as derivatives above the last key, are recorded in their Result
// instead of aborting the whole report.
//
// In Value mode, threads > 1 splits the work between that many goroutines.
func Evaluate(
	in interpolate.Interpolator, s *interpolate.SampleSet,
	mode Mode, xs []float64, threads int,
) (*Report, error) {
	if in == nil {
		return nil, fmt.Errorf("No kernel given to Evaluate.")
	} else if s == nil {
		return nil, fmt.Errorf("No samples given to Evaluate.")
	}

	r := &Report{
		Kernel:  kernelName(in),
		Mode:    mode,
		Keys:    s.Keys(),
		Values:  s.Values(),
		Results: make([]Result, len(xs)),
	}
	for i := range xs {
		r.Results[i].X = xs[i]
	}

	switch mode {
	case Value:
		if threads > 1 {
			ys, err := interpolate.ParallelEvalAll(in, s, xs, threads)
			if err == nil {
				for i := range ys {
					r.Results[i].Y = ys[i]
				}
				return r, nil
			}
			// Fall through to find out which queries failed.
		}
		for i := range r.Results {
			y, err := in.Interpolate(s, xs[i])
			r.Results[i].record(y, nil, err)
		}
	case Derivative:
		for i := range r.Results {
			dy, err := in.FirstDerivative(s, xs[i])
			r.Results[i].record(dy, nil, err)
		}
	case Sensitivity:
		for i := range r.Results {
			sens, err := in.NodeSensitivities(s, xs[i])
			if err != nil {
				r.Results[i].record(0, nil, err)
				continue
			}
			y, err := in.Interpolate(s, xs[i])
			r.Results[i].record(y, sens, err)
		}
	default:
		return nil, fmt.Errorf("Mode '%s' not recognized.", mode)
	}

	return r, nil
}

func (res *Result) record(y float64, sens []float64, err error) {
	if err != nil {
		res.Err = err.Error()
		return
	}
	res.Y, res.Sensitivities = y, sens
}

func kernelName(in interpolate.Interpolator) string {
	for _, name := range KernelNames() {
		if kernels[name] == in {
			return name
		}
	}
	return fmt.Sprintf("%T", in)
}
