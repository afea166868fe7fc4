// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchreport

import (
	"bytes"
	"encoding/json"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults(t *testing.T) benchrun.SuiteResults {
	t.Helper()

	timings := benchrun.Timings{
		{Elapsed: 5, Duration: 5_400 * time.Microsecond, StringLen: 50, StringBytesLen: 50},
		{Elapsed: 2, Duration: 2_100 * time.Microsecond, StringLen: 20, StringBytesLen: 20},
		{Elapsed: 8, Duration: 8_900 * time.Microsecond, StringLen: 80, StringBytesLen: 80},
	}

	summary, err := benchrun.Summarize(timings)
	require.NoError(t, err)

	return benchrun.SuiteResults{{
		Name:        benchrun.RandomLengthSuiteName,
		Description: "random length strings",
		Repeats:     10,
		Warmup:      3 * time.Millisecond,
		Timings:     timings,
		Summary:     summary,
	}}
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "original"

	at := time.Date(2025, 6, 1, 10, 30, 0, 0, time.FixedZone("X", 3600))
	r := New(cfg, sampleResults(t), at)

	assert.Equal(t, Version, r.Version)
	assert.Equal(t, "2025-06-01T09:30:00Z", r.TimestampRFC3339)
	assert.True(t, r.Original)
	assert.Equal(t, runtime.NumCPU(), r.Env.CPUNumLogical)
	assert.Same(t, cfg, r.Params)

	_, err := uuid.Parse(r.RunID)
	require.NoError(t, err)

	require.Len(t, r.Suites, 1)
	s := r.Suites[0]
	assert.Equal(t, int64(3), s.WarmupMs)
	assert.Len(t, s.Timings, 3)
	assert.Equal(t, int64(2_100_000), s.Timings[1].ElapsedNs)
	assert.Equal(t, int64(2), s.Summary.Shortest.ElapsedMs)
	assert.Equal(t, int64(8), s.Summary.Longest.ElapsedMs)
	assert.InDelta(t, 5.0, s.Summary.AverageMs, 0)
}

func TestNew_UniqueRunIDs(t *testing.T) {
	a := New(config.Default(), nil, time.Now())
	b := New(config.Default(), nil, time.Now())

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Empty(t, a.Suites)
}

func TestWrite(t *testing.T) {
	r := New(config.Default(), sampleResults(t), time.Now())

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, Version, decoded["version"])
	assert.Contains(t, decoded, "env")

	params, ok := decoded["params"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 100, params["batch_size"], 0)

	suites, ok := decoded["suites"].([]any)
	require.True(t, ok)
	require.Len(t, suites, 1)

	assert.Contains(t, buf.String(), "\n  \"run_id\"")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWrite_Error(t *testing.T) {
	err := New(config.Default(), nil, time.Now()).Write(failingWriter{})
	assert.ErrorIs(t, err, ErrWriteReport)
}
