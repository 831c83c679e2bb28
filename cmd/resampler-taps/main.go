// Command resampler-taps designs the low-pass filter of a rational resampler
// and prints it as a JSON configuration object.
//
// Usage:
//
//	resampler-taps [flags] <interpolation> <decimation> <fractional-bandwidth>
//
// Examples:
//
//	resampler-taps 1 4 0.4
//	resampler-taps -indent 3 2 0.4
//	resampler-taps -float32 160 147 0.45
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/resampler-taps/dsp/resample"
)

const (
	exitOK    = 0
	exitError = 1
	// exitUsage is -1 as seen by the shell.
	exitUsage = 255
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

func run(prog string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)

	indent := fs.Bool("indent", false, "pretty-print the JSON output")
	float32Taps := fs.Bool("float32", false, "round taps to single precision")
	fs.Usage = func() {
		printUsage(stderr, prog)
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() < 3 {
		printUsage(stdout, prog)
		return exitUsage
	}

	spec, err := parseSpec(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	var opts []resample.Option
	if *float32Taps {
		opts = append(opts, resample.WithSinglePrecision())
	}

	rec, err := resample.Design(spec, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	ind := ""
	if *indent {
		ind = "  "
	}

	if err := rec.Encode(stdout, ind); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	return exitOK
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [interpolation] [decimation] [fractional bandwidth]\n", prog)
	fmt.Fprintf(w, "  Design a filter for use with a rational resampler\n")
}

func parseSpec(args []string) (resample.Spec, error) {
	up, err := strconv.Atoi(args[0])
	if err != nil {
		return resample.Spec{}, fmt.Errorf("interpolation must be an integer: %q", args[0])
	}

	down, err := strconv.Atoi(args[1])
	if err != nil {
		return resample.Spec{}, fmt.Errorf("decimation must be an integer: %q", args[1])
	}

	bw, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return resample.Spec{}, fmt.Errorf("fractional bandwidth must be a number: %q", args[2])
	}

	return resample.Spec{Interpolation: up, Decimation: down, FractionalBW: bw}, nil
}
