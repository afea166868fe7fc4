// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package textgen generates the benchmark inputs: long upper-case strings with
// commas sprinkled roughly every twelve characters, and strings of concatenated
// e-mail-like records.
//
// A Generator owns its random source. Seeded generators produce the same
// inputs on every run, which is what the tests rely on.
package textgen
