package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activeplan/builder"
	"github.com/katalvlaran/activeplan/config"
	"github.com/katalvlaran/activeplan/planner"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve_Defaults(t *testing.T) {
	out, _, err := run(t, "", "solve", "testdata/sample.txt", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1651\n", out)
}

func TestSolve_TwoAgentsFlags(t *testing.T) {
	out, _, err := run(t, "", "solve", "testdata/sample.txt", "-b", "26", "-a", "2", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1707\n", out)
}

func TestSolve_ConfigFileAndPlan(t *testing.T) {
	out, _, err := run(t, "", "solve", "testdata/sample.txt", "--config", "testdata/two_agents.yaml")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "1707", lines[len(lines)-1])
	for _, line := range lines[:len(lines)-1] {
		assert.True(t, strings.HasPrefix(line, "minute "), line)
	}
}

func TestSolve_FlagOverridesConfig(t *testing.T) {
	out, _, err := run(t, "", "solve", "testdata/sample.txt", "--config", "testdata/two_agents.yaml",
		"--agents", "1", "--budget", "30", "--plan=false")
	require.NoError(t, err)
	assert.Equal(t, "1651\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	in := "Valve AA has flow rate=0; tunnel leads to valve BB\nValve BB has flow rate=13; tunnels lead to valves AA, CC\nValve CC has flow rate=2; tunnel leads to valve BB\n"
	out, _, err := run(t, in, "solve", "-", "--budget", "10", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "116\n", out)
}

func TestSolve_Timeout(t *testing.T) {
	out, _, err := run(t, "", "solve", "testdata/sample.txt", "--max-expansions", "1", "--log-level", "error")
	require.ErrorIs(t, err, planner.ErrTimeout)
	assert.Contains(t, out, "interrupted: best ")
	assert.Contains(t, out, "optimum at most ")
}

func TestSolve_Metrics(t *testing.T) {
	_, errOut, err := run(t, "", "solve", "testdata/sample.txt", "--metrics", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, errOut, "activeplan_solve_total")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "Valve AA has flow rate=x\n", "solve", "--log-level", "error")
	assert.ErrorIs(t, err, builder.ErrBadRate)

	_, _, err = run(t, "", "solve", "testdata/sample.txt", "--agents", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "", "solve", "testdata/sample.txt", "--timeout", "soon")
	assert.Error(t, err)

	_, _, err = run(t, "", "solve", "testdata/missing.txt", "--log-level", "error")
	assert.Error(t, err)
}

func TestDistances(t *testing.T) {
	out, _, err := run(t, "", "distances", "testdata/sample.txt", "--concurrency", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, []string{"AA", "BB", "CC", "DD", "EE", "HH", "JJ"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"AA", "0", "1", "2", "1", "2", "5", "2"}, strings.Fields(lines[1]))
}

func TestParseTimeout(t *testing.T) {
	d, err := parseTimeout("90")
	require.NoError(t, err)
	assert.Equal(t, "1m30s", d.String())

	d, err = parseTimeout("250ms")
	require.NoError(t, err)
	assert.Equal(t, "250ms", d.String())

	_, err = parseTimeout("9x")
	assert.Error(t, err)
}

func TestSolve_Trace(t *testing.T) {
	out, errOut, err := run(t, "", "solve", "testdata/sample.txt", "--trace", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "1651\n", out)
	assert.Contains(t, errOut, "planner.Solve")
	assert.Contains(t, errOut, "distance.Compute")
}
