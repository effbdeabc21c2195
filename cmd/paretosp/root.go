package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paretosp/bsp"
	"github.com/katalvlaran/paretosp/graphio"
	"github.com/katalvlaran/paretosp/xerrors"
)

// flags mirrors the original timing harness's getopt surface: -g the
// graph file, -l a free-form label for the run, -c how many times to
// repeat each problem for timing, -i how many times to repeat the
// whole problem set, -v to print per-run search statistics. -p is a
// supplement the original passed the problem-file path through the
// same -i flag it also used as a repeat count; splitting the two here
// keeps both meanings exposed as distinct, unambiguous flags.
type flags struct {
	graphPath    string
	problemsPath string
	label        string
	repeats      int
	setRepeats   int
	verbose      bool
	workers      int
	chartPath    string
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "paretosp",
		Short:         "Run bi-objective shortest-path searches over a graph file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, args)
		},
	}

	flagSet := cmd.Flags()
	flagSet.StringVarP(&f.graphPath, "graph", "g", "", "path to the graph file (binary or road-network text)")
	flagSet.StringVarP(&f.problemsPath, "problems", "p", "", "path to a problem file of start/end pairs")
	flagSet.StringVarP(&f.label, "label", "l", "", "free-form label attached to this run's report")
	flagSet.IntVarP(&f.repeats, "count", "c", 1, "number of timed repetitions per problem")
	flagSet.IntVarP(&f.setRepeats, "iterations", "i", 1, "number of times to repeat the whole problem set")
	flagSet.BoolVarP(&f.verbose, "verbose", "v", false, "print per-run search statistics")
	flagSet.IntVarP(&f.workers, "workers", "w", 0, "parallel worker count; 0 runs the sequential engine")
	flagSet.StringVar(&f.chartPath, "chart", "", "optional path to write an HTML chart of per-run statistics")

	cmd.MarkFlagRequired("graph")

	return cmd
}

func run(ctx context.Context, f *flags, args []string) error {
	graph, err := loadGraph(f.graphPath)
	if err != nil {
		return err
	}

	problems, err := resolveProblems(f, args)
	if err != nil {
		return err
	}

	var opts []bsp.Option
	if f.workers > 0 {
		opts = append(opts, bsp.WithWorkers(f.workers))
	}
	engine := bsp.New(graph, opts...)

	var allStats []bsp.Stats
	for setIter := 0; setIter < f.setRepeats; setIter++ {
		for _, p := range problems {
			samples := make([]float64, 0, f.repeats)
			var last *bsp.Result[int64]
			for i := 0; i < f.repeats; i++ {
				started := time.Now()
				var result *bsp.Result[int64]
				var runErr error
				if f.workers > 0 {
					result, runErr = engine.RunParallel(ctx, p.Start)
				} else {
					result, runErr = engine.Run(ctx, p.Start)
				}
				if runErr != nil {
					return runErr
				}
				samples = append(samples, time.Since(started).Seconds())
				last = result
			}

			avg := prunedAverage(samples, 0.25)
			label := f.label
			if label == "" {
				label = p.String()
			}
			fmt.Fprintf(cmdOut, "%s problem=%s avg_seconds=%.6f target_labels=%d\n",
				label, p.String(), avg, len(last.LabelSet(p.End)))

			if f.verbose {
				fmt.Fprintln(cmdOut, last.Stats().String())
			}
			allStats = append(allStats, last.Stats())
		}
	}

	if f.chartPath != "" {
		if err := writeChart(f.chartPath, allStats); err != nil {
			return err
		}
	}

	return nil
}

// cmdOut is the destination for run output; a package variable so
// tests could redirect it, defaulting to the process's stdout.
var cmdOut = os.Stdout

func resolveProblems(f *flags, args []string) ([]graphio.Problem, error) {
	if f.problemsPath != "" {
		return loadProblems(f.problemsPath)
	}
	if len(args) == 2 {
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Precondition, err, "parsing start node %q", args[0])
		}
		end, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, xerrors.Wrap(xerrors.Precondition, err, "parsing end node %q", args[1])
		}
		return []graphio.Problem{{Start: start, End: end}}, nil
	}

	return nil, xerrors.New(xerrors.Precondition, "no problems: pass -p <file> or a single \"start end\" pair")
}

func writeChart(path string, stats []bsp.Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Wrap(xerrors.Precondition, err, "creating chart file %q", path)
	}
	defer f.Close()

	return graphio.RenderStatsChart(stats, f)
}
