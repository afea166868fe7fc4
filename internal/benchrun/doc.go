// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package benchrun times a string transform over a batch of generated inputs.
//
// A Runner performs one untimed warmup call on the first input, then runs the
// transform a fixed number of times per input and records one Timing for each.
// A Session drives one or more Suites, generating the inputs for each, and a
// Summary reduces a suite's timings to the shortest, longest and average time.
package benchrun
