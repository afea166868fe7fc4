// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger uses PrettyHandler, which prints a timestamp, the level and the
// message on one line followed by the record attributes as indented JSON.
// The level is read from the <EXECUTABLE>_LOG_LEVEL environment variable,
// e.g. LFBENCH_LOG_LEVEL=DEBUG, and defaults to WARN.
package ctxlog
