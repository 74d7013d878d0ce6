package linterp

// Mode names the quantity computed by Evaluate.
type Mode string

const (
	Value       Mode = "Value"
	Derivative  Mode = "Derivative"
	Sensitivity Mode = "Sensitivity"
)

// Report holds the result of running one kernel over a list of query points.
type Report struct {
	Kernel string    `yaml:"kernel"`
	Mode   Mode      `yaml:"mode"`
	Keys   []float64 `yaml:"keys,flow"`
	Values []float64 `yaml:"values,flow"`

	Results []Result `yaml:"results"`
}

// Result is the outcome of a single query. Y is the interpolated value in
// Value and Sensitivity mode and the derivative in Derivative mode.
// Sensitivities is only set in Sensitivity mode. If the query failed, Err
// describes why and Y and Sensitivities are unset.
type Result struct {
	X             float64   `yaml:"x"`
	Y             float64   `yaml:"y"`
	Sensitivities []float64 `yaml:"sensitivities,flow,omitempty"`
	Err           string    `yaml:"error,omitempty"`
}

// Failed returns true if the query could not be evaluated.
func (r *Result) Failed() bool { return r.Err != "" }

// Failures returns the number of failed queries in the report.
func (r *Report) Failures() int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Failed() {
			n++
		}
	}
	return n
}
