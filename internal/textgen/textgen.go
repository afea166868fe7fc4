// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package textgen

import (
	"math/rand/v2"
	"strings"
)

const (
	// CommaInterval is the spacing of the positions at which a comma is scheduled.
	CommaInterval = 12
	// CommaJitter is the exclusive upper bound of the offset added to a scheduled comma.
	CommaJitter = 4

	localPartLen = 8
	domainLen    = 3
	recordSuffix = ".com,"

	// RecordLen is the length of one record: 8 letters, '@', 3 letters and ".com,".
	RecordLen = localPartLen + 1 + domainLen + len(recordSuffix)
)

// Generator produces pseudo-random benchmark inputs. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator drawing from rng. A nil rng is seeded from system state.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		return NewSeeded(0)
	}

	return &Generator{rng: rng}
}

// NewSeeded returns a deterministic Generator for seed.
// Seed zero means a fresh seed from system state.
func NewSeeded(seed uint64) *Generator {
	if seed == 0 {
		return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))} //nolint:gosec
	}

	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))} //nolint:gosec
}

// RandomText returns size characters drawn from 'A'..'Z' with commas placed about every 12th position.
//
// At each index i that is a non-zero multiple of CommaInterval a comma is scheduled
// at i plus an offset in [0, CommaJitter). When the loop reaches the scheduled index
// the comma replaces the letter drawn for it. Scheduling a new comma drops a pending one.
func (g *Generator) RandomText(size int) string {
	if size <= 0 {
		return ""
	}

	buf := make([]byte, size)
	pending := false
	commaAt := 0

	for i := range size {
		if i != 0 && i%CommaInterval == 0 {
			commaAt = i + g.rng.IntN(CommaJitter)
			pending = true
		}

		ch := byte('A' + g.rng.IntN(26))

		if pending && i == commaAt {
			buf[i] = ','
			pending = false

			continue
		}

		buf[i] = ch
	}

	return string(buf)
}

// RandomRecords returns count records of the form xxxxxxxx@yyy.com, concatenated.
// Every record, including the last, ends with a comma.
func (g *Generator) RandomRecords(count int) string {
	if count <= 0 {
		return ""
	}

	sb := strings.Builder{}
	sb.Grow(count * RecordLen)

	for range count {
		for j := range localPartLen + 1 + domainLen {
			if j == localPartLen {
				sb.WriteByte('@')

				continue
			}

			sb.WriteByte(byte('a' + g.rng.IntN(26)))
		}

		sb.WriteString(recordSuffix)
	}

	return sb.String()
}

// RandomLength returns minLen plus a uniform offset in [0, spread).
// A spread of zero or less returns minLen.
func (g *Generator) RandomLength(minLen, spread int) int {
	if spread <= 0 {
		return minLen
	}

	return minLen + g.rng.IntN(spread)
}
