// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	resultsHeader = "============== Results =============="
	resultsFooter = "============== Done =============="
)

// Summary reduces a suite's timings to its extremes and mean.
type Summary struct {
	Shortest  Timing  // First timing with the smallest Elapsed
	Longest   Timing  // Last timing with the largest Elapsed
	AverageMs float64 // Arithmetic mean of Elapsed
}

// Summarize computes the Summary of timings.
func Summarize(timings Timings) (Summary, error) {
	if len(timings) == 0 {
		return Summary{}, ErrNoTimings
	}

	shortest := lo.MinBy(timings, func(a, b Timing) bool {
		return a.Elapsed < b.Elapsed
	})

	// >= keeps the last of equal maxima, matching a stable ascending sort.
	longest := lo.MaxBy(timings, func(a, b Timing) bool {
		return a.Elapsed >= b.Elapsed
	})

	total := lo.SumBy(timings, func(t Timing) int64 {
		return t.Elapsed
	})

	return Summary{
		Shortest:  shortest,
		Longest:   longest,
		AverageMs: float64(total) / float64(len(timings)),
	}, nil
}

// Average formats AverageMs with the fewest digits that represent it exactly.
func (s Summary) Average() string {
	return strconv.FormatFloat(s.AverageMs, 'f', -1, 64)
}

// WriteText writes the results block for s to w.
func (s Summary) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, s.String())
	return err
}

// String renders the results block.
func (s Summary) String() string {
	sb := strings.Builder{}

	sb.WriteString(resultsHeader + "\n")
	fmt.Fprintf(&sb, "Shortest time: %d ms for string of size %d chars (%d bytes)\n",
		s.Shortest.Elapsed, s.Shortest.StringLen, s.Shortest.StringBytesLen)
	fmt.Fprintf(&sb, "Longest time: %d ms for string of size %d chars (%d bytes)\n",
		s.Longest.Elapsed, s.Longest.StringLen, s.Longest.StringBytesLen)
	fmt.Fprintf(&sb, "Average time: %s ms\n", s.Average())
	sb.WriteString(resultsFooter + "\n")

	return sb.String()
}
