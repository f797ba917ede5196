package lineio

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/corridor.report/internal/corridor"
)

func TestRead_WellFormed(t *testing.T) {
	input := strings.Join([]string{
		"# commute flows, morning peak",
		"1\t10\t0\t0\t5\t5",
		"",
		"2 15 2 2 7 7",
	}, "\n")

	lines, err := Read(strings.NewReader(input), Options{})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, corridor.DesireLine{ID: "1", Weight: 10, EndX: 5, EndY: 5}, lines[0])
	assert.Equal(t, corridor.DesireLine{ID: "2", Weight: 15, StartX: 2, StartY: 2, EndX: 7, EndY: 7}, lines[1])
}

func TestRead_MalformedRecords(t *testing.T) {
	cases := []struct {
		name   string
		record string
		reason string
	}{
		{"too few fields", "1 10 0 0 5", "expected 6 fields"},
		{"too many fields", "1 10 0 0 5 5 9", "expected 6 fields"},
		{"non-numeric weight", "1 heavy 0 0 5 5", "non-numeric weight"},
		{"non-numeric coordinate", "1 10 0 zero 5 5", "non-numeric start_y"},
		{"zero weight", "1 0 0 0 5 5", "weight must be positive"},
		{"negative weight", "1 -4 0 0 5 5", "weight must be positive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := "ok 1 0 0 5 5\n" + tc.record + "\n"

			// Strict mode surfaces the error with the right line number.
			_, err := Read(strings.NewReader(input), Options{Strict: true})
			var malformed *corridor.MalformedInputError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, 2, malformed.Line)
			assert.Contains(t, malformed.Error(), tc.reason)

			// Default mode skips the record, keeps the valid one, and warns.
			var warnings []string
			logf := func(format string, args ...any) {
				warnings = append(warnings, fmt.Sprintf(format, args...))
			}
			lines, err := Read(strings.NewReader(input), Options{Logf: logf})
			require.NoError(t, err)
			assert.Len(t, lines, 1)
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], "line 2")
		})
	}
}

func TestRead_StrictAcceptsCleanInput(t *testing.T) {
	input := "a 1.5 0 0 10 0\nb 2 0 1 10 1\n"
	lines, err := Read(strings.NewReader(input), Options{Strict: true})
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestRead_Empty(t *testing.T) {
	lines, err := Read(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(t.TempDir()+"/nope.txt", Options{})
	require.Error(t, err)
	assert.False(t, errors.As(err, new(*corridor.MalformedInputError)),
		"a missing file is not a malformed record")
}
