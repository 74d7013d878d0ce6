package io

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/linterp"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Whitespace-separated table containing the sample points. Lines starting
# with '#' are ignored.
Input = path/to/samples.txt

# Zero-indexed columns of Input which hold the keys (x) and values (y).
XColumn = 0
YColumn = 1

# Mode can be set to one of:
# [ Value | Derivative | Sensitivity ]
# Value evaluates the interpolant, Derivative its first derivative and
# Sensitivity the derivative of the interpolated value with respect to every
# sample value.
Mode = Value

# Query points. Repeat the Query line once per point. You can also, or
# instead, use the QueryMin/QueryMax/QueryPoints grid below.
Query = 0.5
Query = 1.5

#######################
# Optional Parameters #
#######################

# Interpolation kernel. Linear is currently the only kernel. Default is
# Linear.
# Kernel = Linear

# Set Sorted to true if the keys in Input are already strictly increasing.
# This skips sorting, but the ordering is still checked.
# Sorted = false

# Uniformly spaced grid of QueryPoints points between QueryMin and QueryMax
# (inclusive). These are merged with any Query values.
# QueryMin = 0
# QueryMax = 2
# QueryPoints = 100

# Output file. Results are written to stdout if this isn't set.
# Output = path/to/output.txt

# Output format, one of [ Text | YAML ]. Text output can be read back in as a
# table. Default is Text.
# Format = Text

# If set, an image comparing the samples to the interpolated curve is written
# to this file. Requires a working matplotlib.
# Plot = path/to/plot.png

# Number of goroutines used in Value mode. Default is 1.
# Threads = 1`
)

// InterpolateConfig contains the [Interpolate] section of a configuration
// file.
type InterpolateConfig struct {
	// Required
	Input            string
	XColumn, YColumn int
	Mode             string
	Query            []float64

	// Optional
	Kernel      string
	Sorted      bool
	QueryMin    float64
	QueryMax    float64
	QueryPoints int
	Output      string
	Format      string
	Plot        string
	Threads     int
}

// InterpolateWrapper is the top-level gcfg target for [Interpolate] files.
type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

// DefaultInterpolateWrapper returns a wrapper with all optional parameters
// set to their defaults.
func DefaultInterpolateWrapper() *InterpolateWrapper {
	cfg := InterpolateConfig{
		XColumn: 0, YColumn: 1,
		Kernel: "Linear", Format: "Text", Threads: 1,
	}
	return &InterpolateWrapper{cfg}
}

// ReadInterpolateConfig reads and checks the [Interpolate] section of fname.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Interpolate
	if err := con.Check(); err != nil {
		return nil, err
	}
	return con, nil
}

// ParseInterpolateConfig is the same as ReadInterpolateConfig, but reads
// the configuration from a string.
func ParseInterpolateConfig(str string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	con := &wrap.Interpolate
	if err := con.Check(); err != nil {
		return nil, err
	}
	return con, nil
}

func (con *InterpolateConfig) ValidInput() bool {
	return con.Input != ""
}

func (con *InterpolateConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}

func (con *InterpolateConfig) ValidMode() bool {
	_, err := linterp.ParseMode(con.Mode)
	return err == nil
}

func (con *InterpolateConfig) ValidKernel() bool {
	_, err := linterp.KernelByName(con.Kernel)
	return err == nil
}

func (con *InterpolateConfig) ValidQueryGrid() bool {
	if con.QueryPoints == 0 {
		return true
	} else if con.QueryPoints == 1 {
		return con.QueryMin == con.QueryMax
	}
	return con.QueryPoints > 1 && con.QueryMin < con.QueryMax
}

func (con *InterpolateConfig) ValidQueries() bool {
	return len(con.Query) > 0 || con.QueryPoints > 0
}

func (con *InterpolateConfig) ValidFormat() bool {
	switch strings.ToUpper(strings.TrimSpace(con.Format)) {
	case "TEXT", "YAML":
		return true
	}
	return false
}

func (con *InterpolateConfig) ValidThreads() bool {
	return con.Threads > 0
}

// Check returns an error listing every invalid parameter in con, or nil if
// con is valid.
func (con *InterpolateConfig) Check() error {
	var errs *multierror.Error

	if !con.ValidInput() {
		errs = multierror.Append(errs, fmt.Errorf(
			"Invalid/non-existent 'Input' value.",
		))
	}
	if !con.ValidColumns() {
		errs = multierror.Append(errs, fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, "+
				"but are %d and %d.", con.XColumn, con.YColumn,
		))
	}
	if !con.ValidMode() {
		_, err := linterp.ParseMode(con.Mode)
		errs = multierror.Append(errs, err)
	}
	if !con.ValidKernel() {
		_, err := linterp.KernelByName(con.Kernel)
		errs = multierror.Append(errs, err)
	}
	if !con.ValidQueryGrid() {
		errs = multierror.Append(errs, fmt.Errorf(
			"Invalid query grid: QueryMin = %g, QueryMax = %g, "+
				"QueryPoints = %d.", con.QueryMin, con.QueryMax, con.QueryPoints,
		))
	}
	if !con.ValidQueries() {
		errs = multierror.Append(errs, fmt.Errorf(
			"You must set at least one 'Query' or a valid 'QueryPoints'.",
		))
	}
	if !con.ValidFormat() {
		errs = multierror.Append(errs, fmt.Errorf(
			"'Format' must be one of [Text | YAML]. '%s' is not recognized.",
			con.Format,
		))
	}
	if !con.ValidThreads() {
		errs = multierror.Append(errs, fmt.Errorf(
			"'Threads' must be positive, but is %d.", con.Threads,
		))
	}

	return errs.ErrorOrNil()
}

// Queries returns every query point requested by con, in increasing order.
func (con *InterpolateConfig) Queries() []float64 {
	xs := make([]float64, 0, len(con.Query)+con.QueryPoints)
	xs = append(xs, con.Query...)

	switch {
	case con.QueryPoints == 1:
		xs = append(xs, con.QueryMin)
	case con.QueryPoints > 1:
		dx := (con.QueryMax - con.QueryMin) / float64(con.QueryPoints-1)
		for i := 0; i < con.QueryPoints-1; i++ {
			xs = append(xs, con.QueryMin+float64(i)*dx)
		}
		xs = append(xs, con.QueryMax)
	}

	sort.Float64s(xs)
	return xs
}

// IsYAML returns true if results should be written as YAML.
func (con *InterpolateConfig) IsYAML() bool {
	return strings.EqualFold(strings.TrimSpace(con.Format), "YAML")
}
