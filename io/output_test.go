package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/linterp"
	"github.com/phil-mansfield/linterp/math/interpolate"
)

func scenarioReport(t *testing.T, mode linterp.Mode) *linterp.Report {
	in := interpolate.Linear{}
	s, err := in.BuildDataBundle([]float64{0, 1, 2}, []float64{0, 2, 10})
	require.NoError(t, err)
	r, err := linterp.Evaluate(in, s, mode, []float64{0.5, 1.5, 3}, 1)
	require.NoError(t, err)
	return r
}

func TestWriteTextValue(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteText(buf, scenarioReport(t, linterp.Value)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"# Kernel: Linear",
		"# Mode: Value",
		"# Samples: 3",
		"# Failures: 0",
		"# Column 0: x",
		"# Column 1: y",
		"0.5 1",
		"1.5 6",
		"3 10",
	}, lines)
}

func TestWriteTextDerivative(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteText(buf, scenarioReport(t, linterp.Derivative)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "# Failures: 1", lines[3])
	assert.Equal(t, "# Column 1: dy/dx", lines[5])
	assert.Equal(t, "0.5 2", lines[6])
	assert.Equal(t, "1.5 8", lines[7])
	assert.True(t, strings.HasPrefix(lines[8], "# 3 failed: "))
}

func TestWriteTextSensitivity(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteText(buf, scenarioReport(t, linterp.Sensitivity)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "# Columns 2-4: d y / d y_i for each sample i", lines[6])
	assert.Equal(t, "0.5 1 0.5 0.5 0", lines[7])
	assert.Equal(t, "1.5 6 0 0.5 0.5", lines[8])
	assert.Equal(t, "3 10 0 0 1", lines[9])
}

func TestWriteYAML(t *testing.T) {
	r := scenarioReport(t, linterp.Derivative)
	buf := &bytes.Buffer{}
	require.NoError(t, WriteYAML(buf, r))

	assert.Contains(t, buf.String(), "kernel: Linear")
	assert.Contains(t, buf.String(), "mode: Derivative")
	assert.Contains(t, buf.String(), "keys: [0, 1, 2]")

	out := &linterp.Report{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), out))
	assert.Equal(t, r, out)
}
