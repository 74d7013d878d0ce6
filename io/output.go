package io

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/linterp"
)

// WriteText writes r to w as a whitespace-separated table with a commented
// header. Each row holds x, the result and, in Sensitivity mode, one column
// per sample. Failed queries are written as comment lines.
func WriteText(w io.Writer, r *linterp.Report) error {
	header := []string{
		fmt.Sprintf("# Kernel: %s", r.Kernel),
		fmt.Sprintf("# Mode: %s", r.Mode),
		fmt.Sprintf("# Samples: %d", len(r.Keys)),
		fmt.Sprintf("# Failures: %d", r.Failures()),
		"# Column 0: x",
		fmt.Sprintf("# Column 1: %s", columnName(r.Mode)),
	}
	if r.Mode == linterp.Sensitivity {
		header = append(header, fmt.Sprintf(
			"# Columns 2-%d: d y / d y_i for each sample i", len(r.Keys)+1,
		))
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\n")); err != nil {
		return err
	}

	for i := range r.Results {
		res := &r.Results[i]
		var line string
		if res.Failed() {
			line = fmt.Sprintf("# %.10g failed: %s", res.X, res.Err)
		} else {
			fields := make([]string, 0, 2+len(res.Sensitivities))
			fields = append(fields,
				fmt.Sprintf("%.10g", res.X), fmt.Sprintf("%.10g", res.Y),
			)
			for _, sens := range res.Sensitivities {
				fields = append(fields, fmt.Sprintf("%.10g", sens))
			}
			line = strings.Join(fields, " ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// WriteYAML writes r to w as a YAML document.
func WriteYAML(w io.Writer, r *linterp.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func columnName(m linterp.Mode) string {
	switch m {
	case linterp.Derivative:
		return "dy/dx"
	default:
		return "y"
	}
}
