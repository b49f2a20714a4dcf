// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ava-labs/reservoirbench/experiment"
	"github.com/ava-labs/reservoirbench/utils/perms"
)

const fileExtension = ".csv"

var (
	_ experiment.Sink = (*CSVSink)(nil)

	errMalformedResult = errors.New("malformed result")

	countOnlyHeader = []string{"Value", "Count"}
	expectedHeader  = []string{"Value", "Expected Count", "Actual Count"}
)

// CSVSink writes every result to its own file of quoted comma separated
// values.
type CSVSink struct {
	dir string
}

// NewCSVSink returns a sink writing into [dir]. The directory is created on
// the first write.
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{dir: dir}
}

// FileName returns the name of the file a result is written to.
func FileName(result *experiment.Result) string {
	return fmt.Sprintf("%s_%d%s", result.Name, result.Trials, fileExtension)
}

// Write creates or truncates the result's file and returns its path.
func (s *CSVSink) Write(result *experiment.Result) (string, error) {
	if err := os.MkdirAll(s.dir, perms.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("creating output directory %q: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, FileName(result))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perms.ReadWrite)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}

	if err := WriteCSV(f, result); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %q: %w", path, err)
	}
	return path, nil
}

// WriteCSV writes the header and one row per item of [result] to [w].
func WriteCSV(w io.Writer, result *experiment.Result) error {
	if len(result.Histogram) != len(result.Expected) {
		return fmt.Errorf("%w: %d observed counts but %d expected counts",
			errMalformedResult, len(result.Histogram), len(result.Expected))
	}

	bw := bufio.NewWriter(w)
	header := expectedHeader
	if result.CountOnly {
		header = countOnlyHeader
	}
	writeRecord(bw, header)

	expected := result.ExpectedCounts()
	record := make([]string, len(header))
	for i, actual := range result.Histogram {
		record[0] = strconv.Itoa(i)
		if result.CountOnly {
			record[1] = strconv.FormatUint(actual, 10)
		} else {
			record[1] = strconv.FormatUint(expected[i], 10)
			record[2] = strconv.FormatUint(actual, 10)
		}
		writeRecord(bw, record)
	}
	return bw.Flush()
}

// writeRecord quotes every field. Errors are reported by Flush.
func writeRecord(w *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			_ = w.WriteByte(',')
		}
		_ = w.WriteByte('"')
		_, _ = w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('\n')
}
