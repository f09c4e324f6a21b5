package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jdziat/fluentcron/pkg/core"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDailyCmd(t *testing.T) {
	out, err := run(t, "daily", "--at", "05:30")
	require.NoError(t, err)
	assert.Equal(t, "30 5 * * *\n", out)

	out, err = run(t, "daily", "--at", "5")
	require.NoError(t, err)
	assert.Equal(t, "0 5 * * *\n", out)
}

func TestDailyCmd_InvalidTime(t *testing.T) {
	_, err := run(t, "daily", "--at", "24:00")
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, err = run(t, "daily", "--at", "noon")
	assert.Error(t, err)
}

func TestWeeklyCmd(t *testing.T) {
	out, err := run(t, "weekly", "--on", "monday", "--at", "5:00")
	require.NoError(t, err)
	assert.Equal(t, "0 5 * * 1\n", out)

	out, err = run(t, "weekly", "--on", "FRI", "--at", "17:00")
	require.NoError(t, err)
	assert.Equal(t, "0 17 * * 5\n", out)

	out, err = run(t, "weekly", "--on", "3", "--at", "8:15")
	require.NoError(t, err)
	assert.Equal(t, "15 8 * * 3\n", out)

	_, err = run(t, "weekly", "--on", "7")
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, err = run(t, "weekly", "--on", "invalid")
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestMonthlyCmd(t *testing.T) {
	out, err := run(t, "monthly", "--day", "1", "--at", "5:00")
	require.NoError(t, err)
	assert.Equal(t, "0 5 1 * *\n", out)

	_, err = run(t, "monthly", "--day", "32")
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestEveryCmd(t *testing.T) {
	out, err := run(t, "every", "--minutes", "30")
	require.NoError(t, err)
	assert.Equal(t, "*/30 * * * *\n", out)

	out, err = run(t, "every", "--hours", "6")
	require.NoError(t, err)
	assert.Equal(t, "* */6 * * *\n", out)

	_, err = run(t, "every")
	assert.Error(t, err)

	_, err = run(t, "every", "--minutes", "5", "--hours", "2")
	assert.Error(t, err)
}

func TestBuildCmd(t *testing.T) {
	out, err := run(t, "build", "--minute", "0", "--hour", "*/2")
	require.NoError(t, err)
	assert.Equal(t, "0 */2 * * *\n", out)

	_, err = run(t, "build", "--day", "L")
	assert.ErrorIs(t, err, core.ErrInvalidValue)
}

func TestOutputJSON(t *testing.T) {
	out, err := run(t, "daily", "--at", "5:30", "-o", "json")
	require.NoError(t, err)

	var got result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "30 5 * * *", got.Expr)
	assert.Equal(t, "30", got.Fields["minute"])
	assert.Equal(t, "5", got.Fields["hour"])
}

func TestOutputYAML(t *testing.T) {
	out, err := run(t, "monthly", "--day", "15", "--at", "12:30", "--output", "yaml")
	require.NoError(t, err)

	var got result
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "30 12 15 * *", got.Expr)
	assert.Equal(t, "15", got.Fields["day"])
}

func TestOutputFromEnv(t *testing.T) {
	t.Setenv("FLUENTCRON_OUTPUT", "json")

	out, err := run(t, "every", "--minutes", "5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"))

	// flags win over the environment
	out, err = run(t, "every", "--minutes", "5", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "*/5 * * * *\n", out)
}

func TestOutputUnknown(t *testing.T) {
	_, err := run(t, "daily", "-o", "xml")
	assert.Error(t, err)
}

func TestCheckFlag(t *testing.T) {
	out, err := run(t, "weekly", "--on", "sat", "--at", "23:59", "--check")
	require.NoError(t, err)
	assert.Equal(t, "59 23 * * 6\n", out)
}

func TestPresetsCmd(t *testing.T) {
	out, err := run(t, "presets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 15)
	assert.Contains(t, out, "daily-noon")
	assert.Contains(t, out, "0 0 L * *  (non-standard)")
}

func TestPresetsCmd_Lookup(t *testing.T) {
	out, err := run(t, "presets", "yearly-jan-first", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"expr": "0 0 1 1 *"`)

	_, err = run(t, "presets", "never")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in           string
		hour, minute int
	}{
		{"0:00", 0, 0},
		{"05:30", 5, 30},
		{"17", 17, 0},
		{" 8:05 ", 8, 5},
	}

	for _, tt := range tests {
		h, m, err := parseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.hour, h, tt.in)
		assert.Equal(t, tt.minute, m, tt.in)
	}

	for _, in := range []string{"", "ab", "5:xx"} {
		_, _, err := parseClock(in)
		assert.Error(t, err, in)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"weekly", "--on", "tue", "--at", "6:00", "-v"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "0 6 * * 2\n", out.String())
	assert.Contains(t, errOut.String(), "rendered schedule")
	assert.Contains(t, errOut.String(), "weekday=tuesday")
}

func TestPresetsCmd_Check(t *testing.T) {
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"presets", "--check"})

	require.NoError(t, root.Execute())
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 15)
	assert.Contains(t, errOut.String(), "skipping check of non-standard preset")
	assert.Contains(t, errOut.String(), "monthly-last-day")

	out2, err := run(t, "presets", "daily-noon", "--check")
	require.NoError(t, err)
	assert.Contains(t, out2, "0 12 * * *")

	_, err = run(t, "presets", "monthly-last-day", "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-standard")

	out2, err = run(t, "presets", "monthly-last-day")
	require.NoError(t, err)
	assert.Contains(t, out2, "0 0 L * *")
}
