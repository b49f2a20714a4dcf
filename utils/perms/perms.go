// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package perms holds the file modes used for everything the benchmark
// writes to disk.
package perms

import "os"

const (
	// ReadWrite is used for result files.
	ReadWrite os.FileMode = 0o640
	// ReadWriteExecute is used for output directories.
	ReadWriteExecute os.FileMode = 0o750
)
