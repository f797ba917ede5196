// Package lineio reads desire-line input files and writes the corridor
// pipeline's outputs. The formats are thin text wrappers around the core
// types; all algorithmic work lives in internal/corridor.
package lineio

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/banshee-data/corridor.report/internal/corridor"
)

// Options controls how malformed input records are handled.
type Options struct {
	// Strict aborts on the first malformed record. The default policy
	// skips the record and logs a warning.
	Strict bool
	// Logf receives skip warnings; defaults to log.Printf.
	Logf func(format string, args ...any)
}

// lineFieldCount is the fixed column count of an input record:
// line_id weight start_x start_y end_x end_y.
const lineFieldCount = 6

// ReadFile reads desire lines from the named file. See Read.
func ReadFile(path string, opts Options) ([]corridor.DesireLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Read(f, opts)
}

// Read parses whitespace-separated desire-line records, one per line.
// Blank lines and lines starting with '#' are skipped. Malformed records
// (wrong field count, non-numeric or non-positive weight, non-numeric
// coordinate) are skipped with a logged warning, or abort the read with a
// *corridor.MalformedInputError when opts.Strict is set.
func Read(r io.Reader, opts Options) ([]corridor.DesireLine, error) {
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}

	var lines []corridor.DesireLine
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		line, err := parseRecord(text, lineNo)
		if err != nil {
			if opts.Strict {
				return nil, err
			}
			logf("skipping %v", err)
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func parseRecord(text string, lineNo int) (corridor.DesireLine, error) {
	fields := strings.Fields(text)
	if len(fields) != lineFieldCount {
		return corridor.DesireLine{}, &corridor.MalformedInputError{
			Line:   lineNo,
			Reason: fmt.Sprintf("expected %d fields, got %d", lineFieldCount, len(fields)),
		}
	}

	values := make([]float64, lineFieldCount-1)
	names := []string{"weight", "start_x", "start_y", "end_x", "end_y"}
	for i, name := range names {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return corridor.DesireLine{}, &corridor.MalformedInputError{
				Line:   lineNo,
				Reason: fmt.Sprintf("non-numeric %s %q", name, fields[i+1]),
				Err:    err,
			}
		}
		values[i] = v
	}
	if values[0] <= 0 {
		return corridor.DesireLine{}, &corridor.MalformedInputError{
			Line:   lineNo,
			Reason: fmt.Sprintf("weight must be positive, got %g", values[0]),
		}
	}

	return corridor.DesireLine{
		ID:     fields[0],
		Weight: values[0],
		StartX: values[1],
		StartY: values[2],
		EndX:   values[3],
		EndY:   values[4],
	}, nil
}
