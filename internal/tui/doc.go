// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui shows a live view of a benchmark session: one line per suite with
// its phase, a progress bar over the inputs of the suite being timed, and the
// summary of every finished suite.
//
// The TUI is fed by progress events. It quits by itself when the session ends;
// pressing q or ctrl+c abandons the benchmark.
package tui
