// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ava-labs/reservoirbench/experiment"
	"github.com/ava-labs/reservoirbench/utils/logging"
	"github.com/ava-labs/reservoirbench/utils/sampler"
	"github.com/ava-labs/reservoirbench/version"
)

const (
	DefaultTrials     = 100_000
	DefaultItems      = 100
	DefaultSubsetSize = 10
	DefaultOutputDir  = "out"
)

func addProcessFlags(fs *pflag.FlagSet) {
	// If true, print the version and quit.
	fs.Bool(VersionKey, false, "If true, print version and quit")
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Values are overridden by flags and %s_ environment variables", envPrefix))
}

func addExperimentFlags(fs *pflag.FlagSet) {
	fs.IntSlice(TrialsKey, []int{DefaultTrials}, "Numbers of independent trials each experiment is run with, in order. Every count writes its own result file")
	fs.Int(ItemsKey, DefaultItems, "Number of items in the population")
	fs.Int(SubsetSizeKey, DefaultSubsetSize, "Size of the subset used by the subset experiments. Must be in [1, items]")
	fs.Bool(DeterministicKey, true, fmt.Sprintf("If true, every experiment is seeded with --%s. Otherwise the seed is taken from the clock", SeedKey))
	fs.Uint64(SeedKey, sampler.DefaultSeed, "Seed of the Mersenne Twister used by every experiment")
	fs.StringSlice(ExperimentsKey, experiment.DefaultNames, fmt.Sprintf("Experiments to run, in order. Should be a subset of {%s}", strings.Join(experiment.Names(), ", ")))
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.String(OutputDirKey, DefaultOutputDir, "Directory the result files are written to. Created if missing")
	fs.Bool(ProgressKey, true, "If true, print the percentage of completed trials to stderr")
	fs.String(MetricsFileKey, "", "If set, write Prometheus metrics describing every experiment to this file")
}

func addLoggingFlags(fs *pflag.FlagSet) {
	defaults := logging.DefaultConfig()
	fs.String(LogLevelKey, strings.ToLower(logging.Info.String()), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", fmt.Sprintf("The log display level. If left blank, will inherit the value of --%s. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}", LogLevelKey))
	fs.String(LogFormatKey, logging.AutoString, logging.FormatDescription)
	fs.String(LogsDirKey, "", "If set, also write JSON logs to a rotating file in this directory")
	fs.Int(LogRotaterMaxSizeKey, defaults.MaxSize, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogRotaterMaxFilesKey, defaults.MaxFiles, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Int(LogRotaterMaxAgeKey, defaults.MaxAge, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogRotaterCompressKey, defaults.Compress, "Enables the compression of rotated log files through gzip")
}

// BuildFlagSet returns every flag understood by the benchmark.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.Client, pflag.ContinueOnError)
	addProcessFlags(fs)
	addExperimentFlags(fs)
	addOutputFlags(fs)
	addLoggingFlags(fs)
	return fs
}
