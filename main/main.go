// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/reservoirbench/config"
	"github.com/ava-labs/reservoirbench/experiment"
	"github.com/ava-labs/reservoirbench/report"
	"github.com/ava-labs/reservoirbench/utils/logging"
	"github.com/ava-labs/reservoirbench/version"
)

const (
	metricsNamespace = "reservoirbench"
	// Trial progress is logged at debug level every this many percent.
	logProgressInterval = 10
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   version.Client,
		Short: "Empirically validates reservoir sampling algorithms",
		Long: "Runs every requested reservoir sampler for many independent trials, " +
			"and writes the observed and expected selection count of every item to CSV files.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
	c.Flags().AddFlagSet(config.BuildFlagSet())
	return c
}

func run(c *cobra.Command, _ []string) error {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return err
	}
	benchConfig, err := config.GetConfig(v, c.OutOrStdout())
	if err != nil {
		return fmt.Errorf("couldn't load config: %w", err)
	}

	if benchConfig.DisplayVersionAndExit {
		_, err := fmt.Fprint(c.OutOrStdout(), version.String(version.GitCommit))
		return err
	}

	log := logging.NewLoggerFromConfig(version.Client, nopCloser{c.OutOrStdout()}, benchConfig.Logging)
	defer log.Stop()

	log.RecoverAndPanic(func() {
		err = runBenchmark(log, c.ErrOrStderr(), benchConfig)
	})
	if err != nil {
		log.Error("benchmark failed", zap.Error(err))
	}
	return err
}

func runBenchmark(log logging.Logger, progressOut io.Writer, benchConfig config.Config) error {
	log.Info("starting benchmark",
		zap.Stringer("version", version.Current),
		zap.String("commit", version.GitCommit),
		zap.Reflect("config", benchConfig),
	)

	registry := prometheus.NewRegistry()
	metrics, err := experiment.NewMetrics(metricsNamespace, registry)
	if err != nil {
		return fmt.Errorf("couldn't register metrics: %w", err)
	}

	runner := experiment.Runner{
		Log:     log,
		Sink:    report.NewCSVSink(benchConfig.OutputDir),
		Metrics: metrics,
		NewProgress: func(name string, trials int) experiment.Progress {
			progressLog := log.With(
				zap.String("experiment", name),
				zap.Int("trials", trials),
			)
			progress := experiment.MultiProgress{
				experiment.NewLogProgress(progressLog, logProgressInterval),
			}
			if benchConfig.Progress {
				_, _ = fmt.Fprintf(progressOut, "%s (%d trials)\n", name, trials)
				progress = append(progress, experiment.NewConsoleProgress(progressOut))
			}
			return progress
		},
	}
	results, err := runner.Run(benchConfig.Experiments, benchConfig.Experiment, benchConfig.TrialCounts...)
	if err != nil {
		return err
	}

	if benchConfig.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(benchConfig.MetricsFile, registry); err != nil {
			return fmt.Errorf("couldn't write metrics to %q: %w", benchConfig.MetricsFile, err)
		}
		log.Info("wrote metrics", zap.String("path", benchConfig.MetricsFile))
	}

	log.Info("benchmark finished",
		zap.Int("experiments", len(results)),
		zap.String("outputDir", benchConfig.OutputDir),
	)
	return nil
}

// nopCloser keeps the display open after the logger stops.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
