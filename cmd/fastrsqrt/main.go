// Command fastrsqrt evaluates the fast inverse square root, normalizes vector
// files and reports the accuracy of the approximation.
//
// Usage:
//
//	fastrsqrt eval [-iters N] [--] x...
//	fastrsqrt normalize -in FILE -out FILE [-config FILE] [-iters N] [-skip-invalid]
//	fastrsqrt accuracy [-config FILE] [-min X] [-max X] [-n N] [-iters N]
//	fastrsqrt info
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/hupe1980/fastrsqrt"
	"github.com/hupe1980/fastrsqrt/accuracy"
	"github.com/hupe1980/fastrsqrt/internal/config"
	"github.com/hupe1980/fastrsqrt/internal/platform"
	"github.com/hupe1980/fastrsqrt/vecio"
)

var errUsage = errors.New("usage: fastrsqrt <eval|normalize|accuracy|info> [options]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	switch args[0] {
	case "eval":
		return runEval(args[1:], stdout, stderr)
	case "normalize":
		return runNormalize(ctx, args[1:], stdout, stderr)
	case "accuracy":
		return runAccuracy(args[1:], stdout, stderr)
	case "info":
		_, err := fmt.Fprint(stdout, platform.Detect())
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runEval(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("eval", stderr)
	iters := fs.Int("iters", 1, "Newton-Raphson iterations (at least one always runs)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("eval: at least one value required")
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "x\tapprox\texact\trel.error")

	for _, arg := range fs.Args() {
		p, err := fastrsqrt.ParsePositiveFloat(arg)
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}

		approx := p.FastRsqrt(*iters).Inner()
		exact := p.Rsqrt().Inner()
		rel := (float64(exact) - float64(approx)) / float64(exact)

		fmt.Fprintf(tw, "%v\t%v\t%v\t%.3e\n", p, approx, exact, rel)
	}

	return tw.Flush()
}

func runNormalize(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("normalize", stderr)
	in := fs.String("in", "", "input CSV file (.zst/.lz4 compressed by extension)")
	out := fs.String("out", "", "output CSV file (.zst/.lz4 compressed by extension)")
	cfgPath := fs.String("config", "", "YAML config file")
	iters := fs.Int("iters", 0, "Newton-Raphson iterations (overrides config when > 0)")
	skip := fs.Bool("skip-invalid", false, "write zero vectors for invalid input instead of failing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("normalize: -in and -out are required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *iters > 0 {
		cfg.Normalize.Iterations = *iters
	}
	if *skip {
		cfg.Normalize.SkipInvalid = true
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		return err
	}

	r, err := vecio.OpenReader(*in)
	if err != nil {
		return err
	}
	vs, err := vecio.ReadVectors(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	opts := append(cfg.Normalize.Options(), fastrsqrt.WithLogger(logger))
	normalized, res, err := fastrsqrt.NewNormalizer(opts...).NormalizeAll(ctx, vs)
	if err != nil {
		return err
	}

	w, err := vecio.CreateWriter(*out)
	if err != nil {
		return err
	}
	err = vecio.WriteVectors(w, normalized)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "normalized %d of %d vectors (%d rejected)\n", res.Normalized(), res.Total, len(res.Rejected))
	return err
}

func runAccuracy(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	fs := newFlagSet("accuracy", stderr)
	cfgPath := fs.String("config", "", "YAML config file")
	minVal := fs.Float64("min", 0, "smallest sample (overrides config when > 0)")
	maxVal := fs.Float64("max", 0, "largest sample (overrides config when > 0)")
	n := fs.Int("n", 0, "number of samples (overrides config when > 0)")
	iters := fs.Int("iters", 0, "Newton-Raphson iterations (overrides config when > 0)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *cfgPath != "" {
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *minVal > 0 {
		cfg.Accuracy.Min = float32(*minVal)
	}
	if *maxVal > 0 {
		cfg.Accuracy.Max = float32(*maxVal)
	}
	if *n > 0 {
		cfg.Accuracy.Samples = *n
	}
	if *iters > 0 {
		cfg.Accuracy.Iterations = *iters
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a := cfg.Accuracy
	rep := accuracy.Sweep(accuracy.LogSpace(a.Min, a.Max, a.Samples), a.Iterations)

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "iterations\t%d\n", rep.Iterations)
	fmt.Fprintf(tw, "samples\t%d (skipped %d)\n", rep.Count, rep.Skipped)
	fmt.Fprintf(tw, "max abs error\t%.3e\n", rep.MaxAbs)
	fmt.Fprintf(tw, "max rel error\t%.3e (x=%v)\n", rep.MaxRel, rep.WorstInput)
	fmt.Fprintf(tw, "mean rel error\t%.3e\n", rep.MeanRel)
	fmt.Fprintf(tw, "stddev rel error\t%.3e\n", rep.StdDevRel)
	fmt.Fprintf(tw, "within %.3g\t%v\n", accuracy.DefaultEpsilon, rep.MaxRel < accuracy.DefaultEpsilon)

	return tw.Flush()
}
