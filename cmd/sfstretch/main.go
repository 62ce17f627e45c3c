// sfstretch prints neighbor-stretch tables for space-filling curves.
//
// Usage:
//
//	sfstretch [-curves hilbert,moore,morton] [-min 1] [-max 9]
//	          [-stat both|mean|median] [-cyclic] [-workers N]
//
// One tab-aligned row is printed per curve and statistic, one column per
// order, values with two decimals.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/spacefill/locality"
	"github.com/samber/lo"
)

type options struct {
	curves  []locality.Kind
	min     int
	max     int
	stats   []locality.Statistic
	cyclic  bool
	workers int
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fatal("%v", err)
	}
	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fatal("%v", err)
	}
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("sfstretch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	curves := fs.String("curves", "hilbert,moore,morton", "Comma-separated curves to measure.")
	minOrder := fs.Int("min", 1, "Smallest order.")
	maxOrder := fs.Int("max", 9, "Largest order.")
	stat := fs.String("stat", "both", "Statistic: mean, median or both.")
	cyclic := fs.Bool("cyclic", false, "Measure closed curves along the shorter arc.")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "Concurrent (curve, order) computations.")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{min: *minOrder, max: *maxOrder, cyclic: *cyclic, workers: *workers}
	if opts.min < 1 {
		return options{}, fmt.Errorf("-min must be at least 1, got %d", opts.min)
	}
	if opts.max > locality.MaxAnalyzerOrder {
		return options{}, fmt.Errorf("-max %d exceeds the analyzer limit %d", opts.max, locality.MaxAnalyzerOrder)
	}
	if opts.min > opts.max {
		return options{}, fmt.Errorf("-min %d > -max %d", opts.min, opts.max)
	}
	if opts.workers < 1 {
		return options{}, fmt.Errorf("-workers must be positive, got %d", opts.workers)
	}
	for _, name := range strings.Split(*curves, ",") {
		k, err := locality.ParseKind(name)
		if err != nil {
			return options{}, err
		}
		opts.curves = append(opts.curves, k)
	}
	opts.curves = lo.Uniq(opts.curves)

	switch strings.ToLower(*stat) {
	case "both":
		opts.stats = []locality.Statistic{locality.StatMean, locality.StatMedian}
	case "mean", "average":
		opts.stats = []locality.Statistic{locality.StatMean}
	case "median":
		opts.stats = []locality.Statistic{locality.StatMedian}
	default:
		return options{}, fmt.Errorf("unknown -stat %q", *stat)
	}
	return opts, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	orders := lo.RangeFrom(opts.min, opts.max-opts.min+1)
	sweepOpts := []locality.Option{locality.WithWorkers(opts.workers)}
	if opts.cyclic {
		sweepOpts = append(sweepOpts, locality.WithCyclicDistance())
	}
	results, err := locality.Sweep(ctx, opts.curves, orders, sweepOpts...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := append([]string{"curve", "stat"}, lo.Map(orders, func(o int, _ int) string {
		return strconv.Itoa(o)
	})...)
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")
	for ki, kind := range opts.curves {
		row := results[ki*len(orders) : (ki+1)*len(orders)]
		for _, stat := range opts.stats {
			cells := lo.Map(row, func(r locality.Result, _ int) string {
				if stat == locality.StatMedian {
					return strconv.FormatFloat(r.Median, 'f', 2, 64)
				}
				return strconv.FormatFloat(r.Average, 'f', 2, 64)
			})
			line := append([]string{kind.String(), stat.String()}, cells...)
			fmt.Fprintln(tw, strings.Join(line, "\t")+"\t")
		}
	}
	return tw.Flush()
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "sfstretch: "+format+"\n", args...)
	os.Exit(1)
}
