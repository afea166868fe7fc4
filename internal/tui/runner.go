// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/progress"
	"golang.org/x/sync/errgroup"
)

const eventBuffer = 1024

// SessionFunc runs a benchmark session, reporting progress to reporter.
// The TUI passes each finished suite to onSuite.
type SessionFunc func(ctx context.Context, reporter progress.Reporter, onSuite func(*benchrun.SuiteResult) error) (benchrun.SuiteResults, error)

// Runner owns the tea program for one session.
type Runner struct {
	opts []tea.ProgramOption
}

// NewRunner creates a Runner. Options are passed to tea.NewProgram after the defaults.
func NewRunner(opts ...tea.ProgramOption) *Runner {
	return &Runner{opts: opts}
}

// programListener forwards progress events into the tea program.
type programListener struct {
	program *tea.Program
}

// OnEvent implements progress.Listener.
func (pl programListener) OnEvent(event progress.Event) {
	pl.program.Send(ProgressEventMsg{Event: event})
}

// Run shows the TUI while fn runs. It returns once both the session and the UI have finished.
// Quitting the UI cancels the context passed to fn.
func (r *Runner) Run(ctx context.Context, suites []string, fn SessionFunc) (benchrun.SuiteResults, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(cancel)
	model.AddSuites(suites...)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, r.opts...)
	program := tea.NewProgram(model, opts...)

	reporter := progress.NewChannelReporter(eventBuffer)
	reporter.Listen(runCtx, programListener{program: program})

	var (
		results    benchrun.SuiteResults
		g          errgroup.Group
		sessionErr error
	)

	g.Go(func() error {
		res, err := fn(runCtx, reporter, func(sr *benchrun.SuiteResult) error {
			program.Send(SuiteDoneMsg{Result: sr})
			return nil
		})

		// Flush queued events before the UI is told to quit.
		reporter.Close()

		results, sessionErr = res, err
		program.Send(SessionDoneMsg{Err: err})

		return nil
	})

	g.Go(func() error {
		_, err := program.Run()
		// The UI is gone, so nothing is watching the benchmark any more.
		cancel()

		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}

		return err
	})

	uiErr := g.Wait()

	return results, errors.Join(sessionErr, uiErr)
}
