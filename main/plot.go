package main

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/linterp"
)

// plotReport draws the successful results in r and saves the figure to
// fname. In Value and Sensitivity mode the input samples are drawn on top.
func plotReport(fname string, r *linterp.Report) error {
	xs, ys := make([]float64, 0, len(r.Results)), make([]float64, 0, len(r.Results))
	for i := range r.Results {
		if r.Results[i].Failed() {
			continue
		}
		xs = append(xs, r.Results[i].X)
		ys = append(ys, r.Results[i].Y)
	}
	if len(xs) == 0 {
		return fmt.Errorf("No successful queries to plot.")
	}

	plt.Reset()
	plt.Figure()

	plt.Plot(xs, ys, "r", plt.LW(3))
	if r.Mode == linterp.Derivative {
		plt.YLabel(`$dy/dx$`, plt.FontSize(16))
	} else {
		plt.Plot(r.Keys, r.Values, "ok")
		plt.YLabel(`$y$`, plt.FontSize(16))
	}
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.Title(fmt.Sprintf("%s %s, %d samples", r.Kernel, r.Mode, len(r.Keys)))
	plt.Grid(plt.Axis("y"))

	plt.SaveFig(fname)
	plt.Execute()
	return nil
}
