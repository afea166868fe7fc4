// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"io"
	"os"
	"time"
)

// SuiteResult is the outcome of timing one suite.
type SuiteResult struct {
	Name        string        // Suite name
	Description string        // Plural description of the inputs
	Repeats     int           // Transform calls per input
	Warmup      time.Duration // Untimed warmup, reported separately
	Timings     Timings       // One per input, in input order
	Summary     Summary
}

// SuiteResults is the ordered outcome of a session.
type SuiteResults []*SuiteResult

// Print writes the results blocks to stdout.
func (r SuiteResults) Print() error {
	return r.WriteText(os.Stdout)
}

// WriteText writes one results block per suite to w.
func (r SuiteResults) WriteText(w io.Writer) error {
	for _, res := range r {
		if err := res.Summary.WriteText(w); err != nil {
			return err
		}
	}

	return nil
}

// Timings returns the concatenated timings of every suite.
func (r SuiteResults) Timings() Timings {
	var all Timings
	for _, res := range r {
		all = append(all, res.Timings...)
	}

	return all
}
