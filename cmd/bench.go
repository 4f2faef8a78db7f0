package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sanjithdevineni/AoA-Project-1/bench"
	coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"
	"github.com/sanjithdevineni/AoA-Project-1/infra/metrics"
)

var (
	benchSizes  []int
	benchTrials int
	benchOut    string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the planner benchmark suites",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", nil, "instance sizes to time")
	benchCmd.Flags().IntVar(&benchTrials, "trials", 0, "trials per size")
	benchCmd.Flags().StringVar(&benchOut, "out", "", "output directory for result CSVs")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(benchSizes) > 0 {
		cfg.Bench.Sizes = benchSizes
	}
	if benchTrials > 0 {
		cfg.Bench.Trials = benchTrials
	}
	if benchOut != "" {
		cfg.Bench.OutDir = benchOut
	}
	if err := cfg.Bench.Validate(); err != nil {
		return err
	}

	var rec coremetrics.BenchRecorder
	if cfg.Metrics.InfluxEnabled {
		if br, ok := metrics.NewInfluxSinkWithFallback(cfg.Metrics).(coremetrics.BenchRecorder); ok {
			rec = br
		}
	}

	rep, err := bench.New(cfg.Bench, rec).Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote results to %s\n", cfg.Bench.OutDir)
	fmt.Fprintf(out, "fit %s: coeff=%.4g rmse=%.4gms\n", rep.SortedFit.Model, rep.SortedFit.Coeff, rep.SortedFit.RMSEMS)
	fmt.Fprintf(out, "fit %s: coeff=%.4g rmse=%.4gms\n", rep.UnsortedFit.Model, rep.UnsortedFit.Coeff, rep.UnsortedFit.RMSEMS)
	return nil
}
