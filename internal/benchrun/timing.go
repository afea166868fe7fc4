// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"time"
	"unicode/utf8"
)

// Timing is the measurement for one input: the total time for all repeats.
type Timing struct {
	Elapsed        int64         // Whole milliseconds, truncated
	Duration       time.Duration // Full resolution elapsed time
	StringLen      int           // Input length in characters
	StringBytesLen int           // Input length in UTF-8 bytes
}

// Timings is the ordered sequence of timings for a suite, one per input.
type Timings []Timing

// NewTiming builds the Timing for input measured at d.
func NewTiming(d time.Duration, input string) Timing {
	return Timing{
		Elapsed:        d.Milliseconds(),
		Duration:       d,
		StringLen:      utf8.RuneCountInString(input),
		StringBytesLen: len(input),
	}
}

// TotalBytes is the sum of StringBytesLen over all timings.
func (ts Timings) TotalBytes() int64 {
	var n int64
	for _, t := range ts {
		n += int64(t.StringBytesLen)
	}

	return n
}
