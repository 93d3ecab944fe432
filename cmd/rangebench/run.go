package main

import (
	"fmt"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rangekit/bench"
	"rangekit/engine"
	"rangekit/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the complex chain benchmark",
	RunE:  runBench,
}

func init() {
	runCmd.Flags().Int("copies", 0, "corpus copies (overrides BENCH_COPIES)")
	runCmd.Flags().Int("runs", 0, "timed runs per version (overrides BENCH_RUNS)")
}

func runBench(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	i := newInjector(".", func(cfg *config.Config) {
		if flags.Changed("copies") {
			cfg.Bench.Copies, _ = flags.GetInt("copies")
		}
		if flags.Changed("runs") {
			cfg.Bench.Runs, _ = flags.GetInt("runs")
		}
	})

	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return err
	}
	log, err := do.Invoke[*zap.Logger](i)
	if err != nil {
		return err
	}
	defer log.Sync()
	engine.SetLogger(log)

	objs := bench.Corpus(cfg.Bench.Copies)
	n, err := bench.Verify(objs)
	if err != nil {
		return err
	}
	log.Info("chain verified",
		zap.Int("elements", objs.Num()),
		zap.Int("results", n),
	)

	runner, err := do.Invoke[*bench.Runner](i)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, res := range []bench.Result{
		runner.Measure("baseline", func() { bench.Baseline(objs) }),
		runner.Measure("pipeline", func() { bench.Pipeline(objs) }),
	} {
		fmt.Fprintf(out, "%-9s runs=%d min=%s avg=%s max=%s\n",
			res.Name, res.Runs,
			res.Min.Round(time.Microsecond), res.Avg.Round(time.Microsecond), res.Max.Round(time.Microsecond))
	}
	return nil
}
