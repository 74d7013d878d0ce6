/*package interpolate implements one-dimensional interpolation kernels over
immutable sample sets, along with their first derivatives and the
sensitivities of interpolated values to the underlying samples.
*/
package interpolate

// Interpolator is a 1D interpolation kernel. Kernels hold no state, so a
// single Interpolator and a single SampleSet can be shared between any number
// of goroutines.
type Interpolator interface {
	// Interpolate returns the interpolated value of s at x.
	Interpolate(s *SampleSet, x float64) (float64, error)
	// FirstDerivative returns the derivative of the interpolant of s at x.
	FirstDerivative(s *SampleSet, x float64) (float64, error)
	// NodeSensitivities returns the partial derivatives of Interpolate(s, x)
	// with respect to each of the sample values of s. The returned slice has
	// length s.Size().
	NodeSensitivities(s *SampleSet, x float64) ([]float64, error)

	// BuildDataBundle creates a SampleSet from unsorted points.
	BuildDataBundle(xs, ys []float64) (*SampleSet, error)
	// BuildFromSortedArrays creates a SampleSet from points which the caller
	// guarantees are strictly increasing in x.
	BuildFromSortedArrays(xs, ys []float64) (*SampleSet, error)
}

var (
	_ Interpolator = Linear{}
	_ Interpolator = &Linear{}
)
