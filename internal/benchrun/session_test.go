// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/matt-FFFFFF/lfbench/internal/progress"
	"github.com/matt-FFFFFF/lfbench/internal/textgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallParams() Params {
	return Params{Inputs: 4, MinLength: 100, LengthSpread: 50, Records: 20}
}

func TestDefaultSuites(t *testing.T) {
	suites := DefaultSuites(textgen.NewSeeded(1), smallParams())
	require.Len(t, suites, 2)

	assert.Equal(t, RandomLengthSuiteName, suites[0].Name)
	assert.Equal(t, RecordSuiteName, suites[1].Name)

	for range 20 {
		n := len(suites[0].Generate(0))
		assert.GreaterOrEqual(t, n, 100)
		assert.Less(t, n, 150)
	}

	assert.Len(t, suites[1].Generate(0), 20*textgen.RecordLen)
}

func TestSession_Run(t *testing.T) {
	var after []string

	rec := &eventRecorder{}
	runner := NewRunner(2)
	runner.Clock = steppingClock(3 * time.Millisecond)

	s := &Session{
		Runner:   runner,
		Reporter: rec,
		AfterSuite: func(r *SuiteResult) error {
			after = append(after, r.Name)
			return nil
		},
	}

	results, err := s.Run(context.Background(), DefaultSuites(textgen.NewSeeded(9), smallParams())...)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, []string{RandomLengthSuiteName, RecordSuiteName}, after)

	for _, res := range results {
		assert.Len(t, res.Timings, 4)
		assert.Equal(t, 2, res.Repeats)
		assert.NotEmpty(t, res.Description)
	}

	for _, timing := range results[1].Timings {
		assert.Equal(t, 20*textgen.RecordLen, timing.StringLen)
	}

	assert.Equal(t, progress.EventGenerating, rec.events[0].Type)
	assert.Equal(t, RandomLengthSuiteName, rec.events[0].Suite)
	assert.Equal(t, progress.EventGenerated, rec.events[1].Type)
	assert.Equal(t, 4, rec.events[1].Data.Total)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, progress.EventTimingDone, last.Type)
	assert.Equal(t, RecordSuiteName, last.Suite)
}

func TestSession_TextOutput(t *testing.T) {
	var buf bytes.Buffer

	s := &Session{
		Runner:   NewRunner(10),
		Reporter: progress.NewTextReporter(&buf),
		AfterSuite: func(r *SuiteResult) error {
			return r.Summary.WriteText(&buf)
		},
	}

	_, err := s.Run(context.Background(), DefaultSuites(textgen.NewSeeded(3), Params{
		Inputs: 3, MinLength: 64, LengthSpread: 64, Records: 8,
	})...)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Generating source data...done, 3 random length strings generated.\n")
	assert.Contains(t, out, "Generating source data...done, 3 same length strings (random e-mail addresses) generated.\n")
	assert.Equal(t, 2, strings.Count(out, "Warmup...done, took "))
	assert.Equal(t, 2, strings.Count(out, "Timing, 10 repetitions per string...\n"))
	assert.Contains(t, out, "\rRun against string #2\n============== Results ==============\n")
	assert.Equal(t, 2, strings.Count(out, "============== Done ==============\n"))
}

func TestSession_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &eventRecorder{}

	suite := Suite{
		Name:   "cancelled",
		Inputs: 5,
		Generate: func(i int) string {
			if i == 2 {
				cancel()
			}

			return strconv.Itoa(i)
		},
	}

	results, err := (&Session{Reporter: rec}).Run(ctx, suite, suite)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, progress.EventFailed, last.Type)
	assert.ErrorIs(t, last.Data.Error, context.Canceled)
}

func TestSession_AfterSuiteError(t *testing.T) {
	errStop := errors.New("stop")

	s := &Session{
		Runner: NewRunner(1),
		AfterSuite: func(*SuiteResult) error {
			return errStop
		},
	}

	results, err := s.Run(context.Background(), DefaultSuites(textgen.NewSeeded(3), smallParams())...)
	require.ErrorIs(t, err, errStop)
	assert.Len(t, results, 1)
}

func TestSession_EmptySuite(t *testing.T) {
	_, err := (&Session{}).RunSuite(context.Background(), Suite{Name: "empty"})
	assert.ErrorIs(t, err, ErrNoInputs)
}
