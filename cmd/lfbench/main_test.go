// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/lfbench/internal/benchreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/goleak"
)

const (
	resultsHeader = "============== Results ==============\n"
	resultsFooter = "============== Done ==============\n"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// smallRun keeps the suites small enough for unit tests.
var smallRun = []string{
	"--repeats", "2",
	"--batch-size", "3",
	"--min-length", "64",
	"--length-spread", "64",
	"--record-count", "4",
	"--seed", "7",
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newRootCmd()
	root.Writer = &stdout
	root.ErrWriter = &stderr
	root.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := root.Run(context.Background(), append([]string{"lfbench"}, args...))

	return stdout.String(), stderr.String(), err
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr cli.ExitCoder

	require.True(t, errors.As(err, &exitErr), "expected cli.ExitCoder, got %T", err)
	assert.Equal(t, code, exitErr.ExitCode())
}

func TestRun_TextOutput(t *testing.T) {
	t.Setenv("LFBENCH_CONFIG", "")

	out, _, err := execute(t, smallRun...)
	require.NoError(t, err)

	assert.Contains(t, out, "Generating source data...done, 3 random length strings generated.\n")
	assert.Contains(t, out, "Generating source data...done, 3 same length strings (random e-mail addresses) generated.\n")
	assert.Equal(t, 2, strings.Count(out, "Timing, 2 repetitions per string...\n"))
	assert.Equal(t, 2, strings.Count(out, resultsHeader))
	assert.Equal(t, 2, strings.Count(out, resultsFooter))
	// Inputs are numbered from zero.
	assert.Contains(t, out, "\rRun against string #2\n"+resultsHeader)
	assert.True(t, strings.HasSuffix(out, resultsFooter))
}

func TestRun_Exports(t *testing.T) {
	t.Setenv("LFBENCH_CONFIG", "")

	dir := t.TempDir()
	outFile := filepath.Join(dir, "results.bin")
	jsonFile := filepath.Join(dir, "report.json")
	metricsFile := filepath.Join(dir, "lfbench.prom")

	args := append([]string{}, smallRun...)
	args = append(args, "--out", outFile, "--json", jsonFile, "--metrics-file", metricsFile, "original")

	runOut, _, err := execute(t, args...)
	require.NoError(t, err)

	b, err := os.ReadFile(jsonFile)
	require.NoError(t, err)

	var report benchreport.Report
	require.NoError(t, json.Unmarshal(b, &report))
	assert.True(t, report.Original)
	assert.Equal(t, "original", report.Params.Mode)
	assert.Equal(t, 2, report.Params.Repeats)
	require.Len(t, report.Suites, 2)

	for _, s := range report.Suites {
		assert.Len(t, s.Timings, 3)
	}

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "lfbench_transform_duration_milliseconds")

	// The saved results print the same blocks as the run.
	showOut, _, err := execute(t, "show", outFile)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(showOut, resultsHeader))

	for _, block := range strings.SplitAfter(showOut, resultsFooter) {
		if block == "" {
			continue
		}
		assert.Contains(t, runOut, block)
	}
}

func TestRun_JSONToStdout(t *testing.T) {
	t.Setenv("LFBENCH_CONFIG", "")

	args := append([]string{}, smallRun...)
	args = append(args, "--json", "-")

	out, _, err := execute(t, args...)
	require.NoError(t, err)

	// The report follows the last results block.
	idx := strings.LastIndex(out, resultsFooter)
	require.NotEqual(t, -1, idx)

	var report benchreport.Report
	require.NoError(t, json.Unmarshal([]byte(out[idx+len(resultsFooter):]), &report))
	assert.Equal(t, benchreport.Version, report.Version)
	assert.NotEmpty(t, report.RunID)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("LFBENCH_CONFIG", "")

	out, _, err := execute(t, "--repeats", "0")
	require.Error(t, err)
	requireExitCode(t, err, 1)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Empty(t, out)
}

func TestRun_ExportError(t *testing.T) {
	t.Setenv("LFBENCH_CONFIG", "")

	args := append([]string{}, smallRun...)
	args = append(args, "--out", filepath.Join(t.TempDir(), "missing", "results.bin"))

	out, _, err := execute(t, args...)
	require.Error(t, err)
	requireExitCode(t, err, 1)
	assert.Contains(t, err.Error(), "failed to export results")
	assert.Equal(t, 2, strings.Count(out, resultsHeader), "results are printed before exporting")
}

func TestShow_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no file", args: []string{"show"}, wantErr: "please provide a results file"},
		{name: "missing file", args: []string{"show", filepath.Join(t.TempDir(), "nope.bin")}, wantErr: "failed to read file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			requireExitCode(t, err, 1)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfig_PrintsEffectiveConfig(t *testing.T) {
	t.Setenv("LFBENCH_CONFIG", "")

	out, _, err := execute(t, "--repeats", "3", "config", "original")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: original\n")
	assert.Contains(t, out, "repeats: 3\n")
	assert.Contains(t, out, "batch_size: 100\n")
}
