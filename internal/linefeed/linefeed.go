// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linefeed contains the transformation being benchmarked.
package linefeed

import "strings"

// AddLineFeeds returns text with a line feed inserted after every comma.
func AddLineFeeds(text string) string {
	n := strings.Count(text, ",")
	if n == 0 {
		return text
	}

	sb := strings.Builder{}
	sb.Grow(len(text) + n)

	for {
		i := strings.IndexByte(text, ',')
		if i < 0 {
			break
		}

		sb.WriteString(text[:i+1])
		sb.WriteByte('\n')

		text = text[i+1:]
	}

	sb.WriteString(text)

	return sb.String()
}

// Func is the signature of a transform the benchmark runner can time.
type Func func(string) string
