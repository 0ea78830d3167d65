package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/gridcal/internal/apperr"
)

func TestRun_PrintsRequestedMonths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--start", "2024:11", "--column", "2", "--month-num", "4", "--no-color"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(strings.NewReader(""), out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "   November 2024          December 2024\n")
	require.Contains(t, out.String(), "    January 2025          February 2025\n")
	assert.Equal(t, 2, strings.Count(out.String(), "Su Mo Tu We Th Fr Sa   Su Mo Tu We Th Fr Sa\n"))
	assert.Empty(t, errOut.String())
}

func TestRun_InteractiveSession(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader("2024\n6\n3\n2\n"), out, &bytes.Buffer{}, []string{"--no-color"})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "Start year: Start month: Months per row: Number of months: "))
	require.Contains(t, out.String(), "June 2024")
	require.Contains(t, out.String(), "July 2024")
	require.NotContains(t, out.String(), "August 2024")
}

func TestRun_ZeroMonthsPrintsNothing(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-s", "2024:1", "-c", "3", "-m", "0"})

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRun_YAMLFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-s", "2024:12", "-c", "1", "-m", "2", "-f", "yaml"})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out.String(), "months:\n"))
	require.Contains(t, out.String(), "year: 2025")
	require.Contains(t, out.String(), "first_weekday: Sunday")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_DebugLogsGoToErrorStream(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(strings.NewReader(""), out, errOut, []string{"-s", "2024:1", "-c", "1", "-m", "1", "--log-level", "debug", "--no-color"})

	require.NoError(t, err)
	require.Contains(t, errOut.String(), "run_id=")
	require.NotContains(t, out.String(), "run_id=")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		input    string
		kind     apperr.Kind
		exitCode int
	}{
		{name: "invalid month", args: []string{"--start", "2024:13"}, kind: apperr.ArgumentParse, exitCode: 2},
		{name: "too many values", args: []string{"-s", "2024:1", "--column", "1", "2"}, kind: apperr.TooManyArguments, exitCode: 2},
		{name: "missing value", args: []string{"--format"}, kind: apperr.MissingArgument, exitCode: 2},
		{name: "no input", args: nil, input: "", kind: apperr.Input, exitCode: 1},
		{name: "past the last supported year", args: []string{"-s", "999999999:12", "-c", "1", "-m", "2"}, kind: apperr.DateRange, exitCode: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			err := run(strings.NewReader(tc.input), out, &bytes.Buffer{}, tc.args)

			require.Error(t, err)
			assert.Equal(t, tc.kind, apperr.KindOf(err))
			assert.Equal(t, tc.exitCode, exitCode(err))
			assert.NotContains(t, out.String(), "Su Mo Tu", "no calendar is printed on failure")
		})
	}
}

func TestRun_YearsOutsideCommonEra(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"-44:3":   "March -44",
		"0:1":     "January 0",
		"10000:1": "January 10000",
	}

	for start, title := range testCases {
		t.Run(start, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-s", start, "-c", "1", "-m", "1", "--no-color"})

			require.NoError(t, err)
			assert.Contains(t, out.String(), title)
		})
	}
}

func TestExitCode_PlainError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, exitCode(errors.New("boom")))
}
