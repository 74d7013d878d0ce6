package interpolate

// Bracket holds the samples immediately at-or-below and above a query point.
// It is built fresh by every call to SampleSet.BoundedValues.
type Bracket struct {
	LowerIndex           int
	LowerKey, LowerValue float64

	// HasHigher is false when the query is at or above the last key, in
	// which case HigherKey and HigherValue are zero.
	HasHigher              bool
	HigherKey, HigherValue float64
}

// Higher returns the upper sample of the bracket and whether it exists.
func (b Bracket) Higher() (key, value float64, ok bool) {
	return b.HigherKey, b.HigherValue, b.HasHigher
}

// HigherIndex returns the index of the upper sample, or -1 if there is none.
func (b Bracket) HigherIndex() int {
	if !b.HasHigher {
		return -1
	}
	return b.LowerIndex + 1
}
