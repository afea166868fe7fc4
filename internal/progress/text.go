// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"sync"
)

// TextReporter writes the classic console progress for a benchmark run:
//
//	Generating source data...done, 100 random length strings generated.
//	Warmup...done, took 12 ms
//	Timing, 10 repetitions per string...
//	Run against string #99
//
// The "Run against string" line is rewritten in place with a carriage return.
type TextReporter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewTextReporter creates a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report implements Reporter.
func (tr *TextReporter) Report(event Event) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	d := event.Data

	switch event.Type {
	case EventGenerating:
		fmt.Fprint(tr.w, "Generating source data...") // nolint:errcheck
	case EventGenerated:
		fmt.Fprintf(tr.w, "done, %d %s generated.\n", d.Total, d.Description) // nolint:errcheck
	case EventWarmupStarted:
		fmt.Fprint(tr.w, "Warmup...") // nolint:errcheck
	case EventWarmupDone:
		fmt.Fprintf(tr.w, "done, took %d ms\n", d.Elapsed.Milliseconds()) // nolint:errcheck
	case EventTimingStarted:
		fmt.Fprintf(tr.w, "Timing, %d repetitions per string...\n", d.Repeats) // nolint:errcheck
	case EventInputStarted:
		fmt.Fprintf(tr.w, "\rRun against string #%d", d.Index) // nolint:errcheck
	case EventTimingDone:
		fmt.Fprintln(tr.w) // nolint:errcheck
	case EventFailed:
		fmt.Fprintf(tr.w, "\n%s: %v\n", event.Suite, d.Error) // nolint:errcheck
	case EventInputTimed:
	}
}

// Close implements Reporter.
func (tr *TextReporter) Close() {}
