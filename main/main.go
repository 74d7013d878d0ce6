package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"

	"github.com/phil-mansfield/linterp"
	"github.com/phil-mansfield/linterp/io"
)

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode.

	var (
		interpolateStr string
		exampleConfig  bool
	)

	flag.StringVar(
		&interpolateStr, "Interpolate", "",
		"Configuration file for [Interpolate] mode. Any positional "+
			"arguments are used as additional query points.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example [Interpolate] configuration file to stdout.",
	)

	flag.Parse()

	modeName, err := getModeName(interpolateStr, exampleConfig)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Interpolate":
		con, err := io.ReadInterpolateConfig(interpolateStr)
		if err != nil {
			log.Fatal(err.Error())
		}

		extra, err := parseQueries(flag.Args())
		if err != nil {
			log.Fatal(err.Error())
		}
		con.Query = append(con.Query, extra...)

		interpolateMain(con)

	case "ExampleConfig":
		fmt.Println(io.ExampleInterpolateFile)

	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(interpolateStr string, exampleConfig bool) (string, error) {
	setNames := []string{}
	if interpolateStr != "" {
		setNames = append(setNames, "Interpolate")
	}
	if exampleConfig {
		setNames = append(setNames, "ExampleConfig")
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	} else if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but linterp only accepts "+
				"one flag at a time.", strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// parseQueries converts positional arguments into query points.
func parseQueries(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, fmt.Errorf(
				"Positional argument %d, '%s', is not a number.", i, arg,
			)
		}
		xs[i] = x
	}
	return xs, nil
}

// interpolateMain is the main function for [Interpolate] mode.
func interpolateMain(con *io.InterpolateConfig) {
	in, err := linterp.KernelByName(con.Kernel)
	if err != nil {
		log.Fatal(err.Error())
	}
	mode, err := linterp.ParseMode(con.Mode)
	if err != nil {
		log.Fatal(err.Error())
	}

	s, err := io.ReadSamples(con.Input, con.XColumn, con.YColumn, con.Sorted, in)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Read %d samples in [%g, %g] from %s.",
		s.Size(), s.FirstKey(), s.LastKey(), con.Input,
	)

	xs := con.Queries()
	r, err := linterp.Evaluate(in, s, mode, xs, con.Threads)
	if err != nil {
		log.Fatal(err.Error())
	}
	if n := r.Failures(); n > 0 {
		log.Printf("%d of %d queries failed.", n, len(xs))
	}

	out := os.Stdout
	if con.Output != "" {
		f, err := os.Create(con.Output)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer f.Close()
		out = f
	}

	if con.IsYAML() {
		err = io.WriteYAML(out, r)
	} else {
		err = io.WriteText(out, r)
	}
	if err != nil {
		log.Fatal(err.Error())
	}

	if con.Plot != "" {
		if err := plotReport(con.Plot, r); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote plot to %s.", con.Plot)
	}
}
