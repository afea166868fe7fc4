// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress carries benchmark progress events from the runner to whatever
// is displaying them: plain text on the command writer, or the TUI.
// Progress is not logging; it is the output the user watches while a suite runs.
package progress
