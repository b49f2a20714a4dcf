// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/reservoirbench/experiment"
	"github.com/ava-labs/reservoirbench/utils/logging"
)

const envPrefix = "RESERVOIRBENCH"

var (
	errNoExperiments       = errors.New("no experiments requested")
	errDuplicateExperiment = errors.New("experiment requested more than once")
	errInvalidTrialCount   = errors.New("invalid trial count")
	errDuplicateTrialCount = errors.New("trial count requested more than once")

	// now seeds non-deterministic runs.
	now = time.Now
)

// Config is everything needed to run the benchmark.
type Config struct {
	DisplayVersionAndExit bool `json:"displayVersionAndExit"`

	// Experiment.Trials is unset. Every experiment runs once per entry of
	// TrialCounts.
	Experiment    experiment.Config `json:"experiment"`
	TrialCounts   []int             `json:"trialCounts"`
	Experiments   []string          `json:"experiments"`
	Deterministic bool              `json:"deterministic"`

	OutputDir   string `json:"outputDir"`
	Progress    bool   `json:"progress"`
	MetricsFile string `json:"metricsFile"`

	Logging logging.Config `json:"logging"`
}

// Verify rejects configurations the benchmark cannot run.
func (c Config) Verify() error {
	if len(c.TrialCounts) == 0 {
		return fmt.Errorf("%w: no trial counts", experiment.ErrNoTrials)
	}
	seenTrials := make(map[int]struct{}, len(c.TrialCounts))
	for _, trials := range c.TrialCounts {
		run := c.Experiment
		run.Trials = trials
		if err := run.Verify(); err != nil {
			return err
		}
		if _, ok := seenTrials[trials]; ok {
			return fmt.Errorf("%w: %d", errDuplicateTrialCount, trials)
		}
		seenTrials[trials] = struct{}{}
	}

	if len(c.Experiments) == 0 {
		return errNoExperiments
	}
	seen := make(map[string]struct{}, len(c.Experiments))
	for _, name := range c.Experiments {
		if _, err := experiment.Lookup(name); err != nil {
			return err
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", errDuplicateExperiment, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// BuildViper binds the already parsed [fs], then environment variables, then
// the config file named by --config-file, if any. Flags that were set
// explicitly take precedence over the environment, which takes precedence
// over the config file.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		configFile := os.ExpandEnv(v.GetString(ConfigFileKey))
		if configFile != "" {
			v.SetConfigFile(configFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %q: %w", configFile, err)
			}
		}
	}
	return v, nil
}

// GetConfig reads and verifies the benchmark configuration from [v].
// Log output is displayed on [display], which decides the "auto" format.
func GetConfig(v *viper.Viper, display io.Writer) (Config, error) {
	config := Config{
		DisplayVersionAndExit: v.GetBool(VersionKey),
		Experiment: experiment.Config{
			Items:      v.GetInt(ItemsKey),
			SubsetSize: v.GetInt(SubsetSizeKey),
			Seed:       v.GetUint64(SeedKey),
		},
		Experiments:   getExperiments(v),
		Deterministic: v.GetBool(DeterministicKey),
		OutputDir:     os.ExpandEnv(v.GetString(OutputDirKey)),
		Progress:      v.GetBool(ProgressKey),
		MetricsFile:   os.ExpandEnv(v.GetString(MetricsFileKey)),
	}
	if config.DisplayVersionAndExit {
		return config, nil
	}
	if !config.Deterministic {
		config.Experiment.Seed = uint64(now().UnixNano())
	}

	var err error
	config.TrialCounts, err = getTrialCounts(v)
	if err != nil {
		return Config{}, err
	}
	config.Logging, err = getLoggingConfig(v, display)
	if err != nil {
		return Config{}, err
	}
	if err := config.Verify(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// getExperiments accepts both lists and comma separated strings, since
// environment variables can only hold the latter.
func getExperiments(v *viper.Viper) []string {
	var names []string
	for _, entry := range v.GetStringSlice(ExperimentsKey) {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// getTrialCounts accepts lists and comma separated strings, like
// getExperiments.
func getTrialCounts(v *viper.Viper) ([]int, error) {
	var counts []int
	for _, entry := range v.GetStringSlice(TrialsKey) {
		for _, count := range strings.Split(entry, ",") {
			count = strings.TrimSpace(count)
			if count == "" {
				continue
			}
			trials, err := strconv.Atoi(count)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errInvalidTrialCount, count)
			}
			counts = append(counts, trials)
		}
	}
	return counts, nil
}

func getLoggingConfig(v *viper.Viper, display io.Writer) (logging.Config, error) {
	config := logging.DefaultConfig()

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return config, err
	}
	config.DisplayLevel = config.LogLevel
	if displayLevel := v.GetString(LogDisplayLevelKey); displayLevel != "" {
		config.DisplayLevel, err = logging.ToLevel(displayLevel)
		if err != nil {
			return config, err
		}
	}

	config.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), display)
	if err != nil {
		return config, err
	}

	config.Directory = os.ExpandEnv(v.GetString(LogsDirKey))
	config.MaxSize = v.GetInt(LogRotaterMaxSizeKey)
	config.MaxFiles = v.GetInt(LogRotaterMaxFilesKey)
	config.MaxAge = v.GetInt(LogRotaterMaxAgeKey)
	config.Compress = v.GetBool(LogRotaterCompressKey)
	return config, nil
}
