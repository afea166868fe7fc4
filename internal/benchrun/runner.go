// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"context"
	"time"

	"github.com/matt-FFFFFF/lfbench/internal/ctxlog"
	"github.com/matt-FFFFFF/lfbench/internal/linefeed"
	"github.com/matt-FFFFFF/lfbench/internal/progress"
)

// DefaultRepeats is the number of transform calls timed per input.
const DefaultRepeats = 10

// Runner times a transform over a set of inputs.
type Runner struct {
	Repeats   int              // Transform calls per input
	Transform linefeed.Func    // Defaults to linefeed.AddLineFeeds
	Clock     func() time.Time // Defaults to time.Now
}

// NewRunner returns a Runner timing linefeed.AddLineFeeds repeats times per input.
func NewRunner(repeats int) *Runner {
	return &Runner{
		Repeats:   repeats,
		Transform: linefeed.AddLineFeeds,
		Clock:     time.Now,
	}
}

// Run warms up on inputs[0], then times Repeats calls of the transform for each input.
// The result holds one Timing per input, in input order.
// Cancelling ctx stops the run before the next input and no partial result is returned.
func (r *Runner) Run(ctx context.Context, inputs []string, reporter progress.Reporter) (*SuiteResult, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	if r.Repeats < 1 {
		return nil, ErrInvalidRepeats
	}

	if reporter == nil {
		reporter = progress.NewNullReporter()
	}

	logger := ctxlog.Logger(ctx).With("repeats", r.Repeats, "inputs", len(inputs))

	reporter.Report(progress.Event{Type: progress.EventWarmupStarted})

	warmup, err := r.measure(inputs[0], 1)
	if err != nil {
		return nil, err
	}

	logger.Debug("warmup complete", "elapsed", warmup)
	reporter.Report(progress.Event{
		Type: progress.EventWarmupDone,
		Data: progress.EventData{Elapsed: warmup},
	})

	reporter.Report(progress.Event{
		Type: progress.EventTimingStarted,
		Data: progress.EventData{Repeats: r.Repeats},
	})

	timings := make(Timings, 0, len(inputs))

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			logger.Info("run cancelled", "completed", i)
			return nil, err
		}

		reporter.Report(progress.Event{
			Type: progress.EventInputStarted,
			Data: progress.EventData{Index: i, Total: len(inputs)},
		})

		d, err := r.measure(input, r.Repeats)
		if err != nil {
			return nil, err
		}

		timing := NewTiming(d, input)
		timings = append(timings, timing)

		logger.Debug("input timed", "index", i, "elapsed_ms", timing.Elapsed, "bytes", timing.StringBytesLen)
		reporter.Report(progress.Event{
			Type: progress.EventInputTimed,
			Data: progress.EventData{Index: i, Total: len(inputs), Elapsed: d},
		})
	}

	reporter.Report(progress.Event{Type: progress.EventTimingDone})

	summary, err := Summarize(timings)
	if err != nil {
		return nil, err
	}

	return &SuiteResult{
		Repeats: r.Repeats,
		Warmup:  warmup,
		Timings: timings,
		Summary: summary,
	}, nil
}

// measure returns the wall-clock time of n transform calls on input.
func (r *Runner) measure(input string, n int) (elapsed time.Duration, err error) {
	transform := r.Transform
	if transform == nil {
		transform = linefeed.AddLineFeeds
	}

	now := r.Clock
	if now == nil {
		now = time.Now
	}

	defer func() {
		if v := recover(); v != nil {
			err = NewErrTransformPanic(v)
		}
	}()

	start := now()

	for range n {
		_ = transform(input)
	}

	return now().Sub(start), nil
}
