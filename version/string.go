// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

// String describes the running binary, including [commit] when known.
func String(commit string) string {
	if commit == "" {
		return fmt.Sprintf("%s\n", Current)
	}
	return fmt.Sprintf("%s [commit=%s]\n", Current, commit)
}
