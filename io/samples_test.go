package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/linterp/math/interpolate"
)

func writeTable(t *testing.T, body string) string {
	fname := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

func TestReadSamples(t *testing.T) {
	fname := writeTable(t, "2 10 -1\n0 0 -1\n1 2 -1\n")

	s, err := ReadSamples(fname, 0, 1, false, interpolate.Linear{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, s.Keys())
	assert.Equal(t, []float64{0, 2, 10}, s.Values())

	_, err = ReadSamples(fname, 0, 1, true, interpolate.Linear{})
	assert.True(t, errors.Is(err, interpolate.ErrInvalidInput))
}

func TestReadSamplesColumns(t *testing.T) {
	fname := writeTable(t, "7 0 0\n7 2 1\n7 10 2\n")

	s, err := ReadSamples(fname, 2, 1, true, interpolate.Linear{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, s.Keys())
	assert.Equal(t, []float64{0, 2, 10}, s.Values())

	_, err = ReadSamples(fname, 0, 1, false, interpolate.Linear{})
	assert.True(t, errors.Is(err, interpolate.ErrInvalidInput))
}

func TestReadSamplesMissingFile(t *testing.T) {
	_, err := ReadSamples(
		filepath.Join(t.TempDir(), "missing.txt"), 0, 1, false,
		interpolate.Linear{},
	)
	assert.Error(t, err)
}
