// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey         = "config-file"
	VersionKey            = "version"
	TrialsKey             = "trials"
	ItemsKey              = "items"
	SubsetSizeKey         = "subset-size"
	DeterministicKey      = "deterministic"
	SeedKey               = "seed"
	ExperimentsKey        = "experiments"
	OutputDirKey          = "output-dir"
	ProgressKey           = "progress"
	MetricsFileKey        = "metrics-file"
	LogLevelKey           = "log-level"
	LogDisplayLevelKey    = "log-display-level"
	LogFormatKey          = "log-format"
	LogsDirKey            = "log-dir"
	LogRotaterMaxSizeKey  = "log-rotater-max-size"
	LogRotaterMaxFilesKey = "log-rotater-max-files"
	LogRotaterMaxAgeKey   = "log-rotater-max-age"
	LogRotaterCompressKey = "log-rotater-compress-enabled"
)
