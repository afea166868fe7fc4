// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the benchmark parameters and loads them from YAML or HCL files.
//
// Values are layered: defaults, then a config file, then whatever the command line
// sets. Config files are read from the local filesystem when the path exists there,
// otherwise they are fetched with go-getter, so git, http and s3 sources all work.
//
// HCL files may use expressions. The variable cpu_count and the functions min and max
// are available:
//
//	repeats    = 10
//	batch_size = max(cpu_count * 10, 100)
package config
