package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleInterpolateFile(t *testing.T) {
	con, err := ParseInterpolateConfig(ExampleInterpolateFile)
	require.NoError(t, err)

	assert.Equal(t, "path/to/samples.txt", con.Input)
	assert.Equal(t, 0, con.XColumn)
	assert.Equal(t, 1, con.YColumn)
	assert.Equal(t, "Value", con.Mode)
	assert.Equal(t, "Linear", con.Kernel)
	assert.Equal(t, "Text", con.Format)
	assert.Equal(t, 1, con.Threads)
	assert.False(t, con.Sorted)
	assert.False(t, con.IsYAML())
	assert.Equal(t, []float64{0.5, 1.5}, con.Queries())
}

func TestReadInterpolateConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "interp.cfg")
	body := `[Interpolate]
Input = samples.txt
XColumn = 2
YColumn = 0
Mode = Sensitivity
Sorted = true
Query = 3
Query = -1
QueryMin = 0
QueryMax = 1
QueryPoints = 3
Format = yaml
Threads = 4
`
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))

	con, err := ReadInterpolateConfig(fname)
	require.NoError(t, err)

	assert.Equal(t, "samples.txt", con.Input)
	assert.Equal(t, 2, con.XColumn)
	assert.Equal(t, 0, con.YColumn)
	assert.Equal(t, "Sensitivity", con.Mode)
	assert.True(t, con.Sorted)
	assert.True(t, con.IsYAML())
	assert.Equal(t, 4, con.Threads)
	assert.Equal(t, []float64{-1, 0, 0.5, 1, 3}, con.Queries())

	_, err = ReadInterpolateConfig(filepath.Join(t.TempDir(), "missing.cfg"))
	assert.Error(t, err)
}

func TestInterpolateConfigCheck(t *testing.T) {
	body := `[Interpolate]
XColumn = 1
YColumn = 1
Mode = Integral
Kernel = Akima
QueryMin = 2
QueryMax = 1
QueryPoints = 10
Format = csv
Threads = 0
`
	_, err := ParseInterpolateConfig(body)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 7)
	for _, name := range []string{
		"Input", "XColumn", "Integral", "Akima", "QueryMin", "Format",
		"Threads",
	} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestInterpolateConfigNoQueries(t *testing.T) {
	body := `[Interpolate]
Input = samples.txt
Mode = Value
`
	_, err := ParseInterpolateConfig(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Query")
}

func TestInterpolateConfigUnknownVariable(t *testing.T) {
	body := `[Interpolate]
Input = samples.txt
Mode = Value
Query = 1
Smoothing = 3
`
	_, err := ParseInterpolateConfig(body)
	assert.Error(t, err)
}

func TestQueryGrid(t *testing.T) {
	con := &DefaultInterpolateWrapper().Interpolate
	con.QueryMin, con.QueryMax, con.QueryPoints = 1, 1, 1
	assert.True(t, con.ValidQueryGrid())
	assert.Equal(t, []float64{1}, con.Queries())

	con.QueryMin, con.QueryMax, con.QueryPoints = 0, 2, 5
	assert.True(t, con.ValidQueryGrid())
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, con.Queries())

	con.QueryPoints = -1
	assert.False(t, con.ValidQueryGrid())
}
