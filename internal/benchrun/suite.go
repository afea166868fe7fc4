// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import "github.com/matt-FFFFFF/lfbench/internal/textgen"

// Suite names.
const (
	RandomLengthSuiteName = "random length strings"
	RecordSuiteName       = "same length e-mail strings"
)

// Suite describes one batch of inputs to generate and time.
type Suite struct {
	Name        string
	Description string             // Used in "done, N <description> generated."
	Inputs      int                // Number of inputs to generate
	Generate    func(i int) string // Returns input i
}

// Params sizes the default suites.
type Params struct {
	Inputs       int // Inputs per suite
	MinLength    int // Shortest random string
	LengthSpread int // Random strings are MinLength + [0, LengthSpread) long
	Records      int // Records per e-mail string
}

// RandomLengthSuite generates inputs random strings of minLen + [0, spread) characters.
func RandomLengthSuite(gen *textgen.Generator, inputs, minLen, spread int) Suite {
	return Suite{
		Name:        RandomLengthSuiteName,
		Description: "random length strings",
		Inputs:      inputs,
		Generate: func(int) string {
			return gen.RandomText(gen.RandomLength(minLen, spread))
		},
	}
}

// RecordSuite generates inputs strings of records e-mail records each.
func RecordSuite(gen *textgen.Generator, inputs, records int) Suite {
	return Suite{
		Name:        RecordSuiteName,
		Description: "same length strings (random e-mail addresses)",
		Inputs:      inputs,
		Generate: func(int) string {
			return gen.RandomRecords(records)
		},
	}
}

// DefaultSuites returns the random length suite followed by the e-mail record suite.
func DefaultSuites(gen *textgen.Generator, p Params) []Suite {
	return []Suite{
		RandomLengthSuite(gen, p.Inputs, p.MinLength, p.LengthSpread),
		RecordSuite(gen, p.Inputs, p.Records),
	}
}
