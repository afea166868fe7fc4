// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/progress"
	"github.com/matt-FFFFFF/lfbench/internal/textgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headless() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	}
}

func TestRunner_Run(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	suites := benchrun.DefaultSuites(textgen.NewSeeded(1), benchrun.Params{
		Inputs: 3, MinLength: 100, LengthSpread: 10, Records: 5,
	})

	results, err := NewRunner(headless()...).Run(ctx, []string{suites[0].Name, suites[1].Name},
		func(ctx context.Context, reporter progress.Reporter, onSuite func(*benchrun.SuiteResult) error) (benchrun.SuiteResults, error) {
			s := &benchrun.Session{
				Runner:     benchrun.NewRunner(2),
				Reporter:   reporter,
				AfterSuite: onSuite,
			}

			return s.Run(ctx, suites...)
		})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results[0].Timings, 3)
}

func TestRunner_SessionError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := NewRunner(headless()...).Run(ctx, nil,
		func(context.Context, progress.Reporter, func(*benchrun.SuiteResult) error) (benchrun.SuiteResults, error) {
			return nil, benchrun.ErrNoInputs
		})

	assert.ErrorIs(t, err, benchrun.ErrNoInputs)
}

func TestRunner_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	_, err := NewRunner(headless()...).Run(ctx, nil,
		func(ctx context.Context, _ progress.Reporter, _ func(*benchrun.SuiteResult) error) (benchrun.SuiteResults, error) {
			cancel()
			<-ctx.Done()

			return nil, ctx.Err()
		})

	assert.ErrorIs(t, err, context.Canceled)
}
