package interpolate

import (
	"math"
	"sort"
)

// SampleSet is an immutable sequence of (x, y) points whose keys, x, are
// strictly increasing. A SampleSet always contains at least one point.
//
// The zero value is not usable; create SampleSets with NewSampleSet or
// NewSortedSampleSet.
type SampleSet struct {
	xs, ys []float64
}

// points allows xs and ys to be sorted simultaneously.
type points struct {
	xs, ys []float64
}

func (p *points) Len() int           { return len(p.xs) }
func (p *points) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *points) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.ys[i], p.ys[j] = p.ys[j], p.ys[i]
}

// NewSampleSet creates a SampleSet from the points (xs[i], ys[i]), which may
// be given in any order. The input slices are copied and are not modified.
//
// Points which share a key and a value are merged into a single point. Points
// which share a key but have different values are rejected, as are NaN
// entries and inputs with mismatched or zero lengths.
func NewSampleSet(xs, ys []float64) (*SampleSet, error) {
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}

	p := &points{xs: copyOf(xs), ys: copyOf(ys)}
	sort.Stable(p)

	n := 1
	for i := 1; i < len(p.xs); i++ {
		if p.xs[i] == p.xs[n-1] {
			if p.ys[i] != p.ys[n-1] {
				return nil, invalidInput(
					"key %g given conflicting values %g and %g",
					p.xs[i], p.ys[n-1], p.ys[i],
				)
			}
			continue
		}
		p.xs[n], p.ys[n] = p.xs[i], p.ys[i]
		n++
	}

	return &SampleSet{xs: p.xs[:n:n], ys: p.ys[:n:n]}, nil
}

// NewSortedSampleSet creates a SampleSet from points which are already
// sorted by strictly increasing key. No sorting is done, but the ordering is
// still checked in a single pass. The input slices are copied.
func NewSortedSampleSet(xs, ys []float64) (*SampleSet, error) {
	if err := checkPoints(xs, ys); err != nil {
		return nil, err
	}

	for i := 1; i < len(xs); i++ {
		if !(xs[i-1] < xs[i]) {
			return nil, invalidInput(
				"keys are not strictly increasing: xs[%d] = %g, xs[%d] = %g",
				i-1, xs[i-1], i, xs[i],
			)
		}
	}

	return &SampleSet{xs: copyOf(xs), ys: copyOf(ys)}, nil
}

func checkPoints(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return invalidInput("len(xs) = %d, but len(ys) = %d", len(xs), len(ys))
	} else if len(xs) == 0 {
		return invalidInput("at least one point is required")
	}

	for i := range xs {
		if math.IsNaN(xs[i]) {
			return invalidInput("xs[%d] is NaN", i)
		} else if math.IsNaN(ys[i]) {
			return invalidInput("ys[%d] is NaN", i)
		}
	}
	return nil
}

func copyOf(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

// Size returns the number of points in s.
func (s *SampleSet) Size() int { return len(s.xs) }

// Keys returns a copy of the keys of s in increasing order.
func (s *SampleSet) Keys() []float64 { return copyOf(s.xs) }

// Values returns a copy of the values of s, ordered by key.
func (s *SampleSet) Values() []float64 { return copyOf(s.ys) }

// Key returns the i-th smallest key.
func (s *SampleSet) Key(i int) float64 { return s.xs[i] }

// Value returns the value at the i-th smallest key.
func (s *SampleSet) Value(i int) float64 { return s.ys[i] }

// FirstKey returns the smallest key.
func (s *SampleSet) FirstKey() float64 { return s.xs[0] }

// LastKey returns the largest key.
func (s *SampleSet) LastKey() float64 { return s.xs[len(s.xs)-1] }

// InRange returns true if x lies inside [FirstKey(), LastKey()]. Interpolate
// and NodeSensitivities extend silently outside this range, so callers which
// need strict domain checks should use InRange first.
func (s *SampleSet) InRange(x float64) bool {
	return s.xs[0] <= x && x <= s.xs[len(s.xs)-1]
}

// LowerBoundIndex returns the index of the largest key which is less than or
// equal to x. If x is smaller than every key, 0 is returned, so points below
// the range are bracketed by the first two samples. NaN is treated as being
// above every key.
//
// Lookups are O(log n).
func (s *SampleSet) LowerBoundIndex(x float64) int {
	// i is the index of the first key strictly larger than x.
	i := sort.Search(len(s.xs), func(j int) bool { return s.xs[j] > x })
	if i == 0 {
		return 0
	}
	return i - 1
}

// BoundedValues returns the Bracket around x. The bracket has no upper point
// if x is at or above the last key.
func (s *SampleSet) BoundedValues(x float64) Bracket {
	i := s.LowerBoundIndex(x)
	b := Bracket{
		LowerIndex: i,
		LowerKey:   s.xs[i],
		LowerValue: s.ys[i],
	}
	if i < len(s.xs)-1 {
		b.HasHigher = true
		b.HigherKey, b.HigherValue = s.xs[i+1], s.ys[i+1]
	}
	return b
}

// Equal returns true if s and other contain exactly the same points.
func (s *SampleSet) Equal(other *SampleSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.xs) != len(other.xs) {
		return false
	}
	for i := range s.xs {
		if s.xs[i] != other.xs[i] || s.ys[i] != other.ys[i] {
			return false
		}
	}
	return true
}
