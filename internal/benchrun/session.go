// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"context"

	"github.com/matt-FFFFFF/lfbench/internal/ctxlog"
	"github.com/matt-FFFFFF/lfbench/internal/progress"
)

// Session runs suites one after another with a shared Runner.
type Session struct {
	Runner   *Runner
	Reporter progress.Reporter
	// AfterSuite, when set, is called with each result before the next suite starts.
	AfterSuite func(*SuiteResult) error
}

// Run runs each suite in order. It stops at the first error.
func (s *Session) Run(ctx context.Context, suites ...Suite) (SuiteResults, error) {
	results := make(SuiteResults, 0, len(suites))

	for _, suite := range suites {
		res, err := s.RunSuite(ctx, suite)
		if err != nil {
			return results, err
		}

		results = append(results, res)

		if s.AfterSuite != nil {
			if err := s.AfterSuite(res); err != nil {
				return results, err
			}
		}
	}

	return results, nil
}

// RunSuite generates the suite's inputs and times them.
// The inputs are dropped once the timings exist.
func (s *Session) RunSuite(ctx context.Context, suite Suite) (*SuiteResult, error) {
	reporter := progress.WithSuite(s.Reporter, suite.Name)
	logger := ctxlog.Logger(ctx).With("suite", suite.Name)

	runner := s.Runner
	if runner == nil {
		runner = NewRunner(DefaultRepeats)
	}

	reporter.Report(progress.Event{Type: progress.EventGenerating})
	logger.Debug("generating inputs", "count", suite.Inputs)

	inputs := make([]string, 0, suite.Inputs)

	for i := range suite.Inputs {
		if err := ctx.Err(); err != nil {
			s.fail(reporter, err)
			return nil, err
		}

		inputs = append(inputs, suite.Generate(i))
	}

	reporter.Report(progress.Event{
		Type: progress.EventGenerated,
		Data: progress.EventData{Total: len(inputs), Description: suite.Description},
	})

	res, err := runner.Run(ctxlog.New(ctx, logger), inputs, reporter)
	if err != nil {
		s.fail(reporter, err)
		return nil, err
	}

	res.Name = suite.Name
	res.Description = suite.Description

	logger.Info("suite complete",
		"shortest_ms", res.Summary.Shortest.Elapsed,
		"longest_ms", res.Summary.Longest.Elapsed,
		"average_ms", res.Summary.AverageMs,
	)

	return res, nil
}

func (s *Session) fail(reporter progress.Reporter, err error) {
	reporter.Report(progress.Event{
		Type: progress.EventFailed,
		Data: progress.EventData{Error: err},
	})
}
