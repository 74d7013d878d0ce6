/*package io handles the configuration files, sample tables and result files
used by the linterp command line tool.
*/
package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/linterp/math/interpolate"
)

// ReadSamples reads the columns xCol and yCol of the table in fname and
// builds a SampleSet from them using in. If sorted is true the keys are
// expected to already be strictly increasing and are not re-sorted.
func ReadSamples(
	fname string, xCol, yCol int, sorted bool, in interpolate.Interpolator,
) (*interpolate.SampleSet, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, err
	}
	xs, ys := cols[0], cols[1]

	var s *interpolate.SampleSet
	if sorted {
		s, err = in.BuildFromSortedArrays(xs, ys)
	} else {
		s, err = in.BuildDataBundle(xs, ys)
	}
	if err != nil {
		return nil, fmt.Errorf("Samples in '%s': %w", fname, err)
	}
	return s, nil
}
