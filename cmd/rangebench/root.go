package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rangekit/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "rangebench",
	Short: "Benchmark seqs pipelines against hand-written loops",
	Long: `rangebench builds a corpus of engine objects and runs the same filter,
cast and projection chain twice: once as a plain loop and once as a seqs
pipeline. Both must agree before any timing is reported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd, classesCmd)
}
