// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	// ErrParseConfig is returned when a config file cannot be decoded.
	ErrParseConfig = errors.New("failed to parse configuration file")
	// ErrUnknownFormat is returned for config files that are neither YAML nor HCL.
	ErrUnknownFormat = errors.New("unknown configuration file format, expected .yaml, .yml or .hcl")
)

// Parse decodes data into cfg, choosing the format from the extension of name.
// Values absent from data keep whatever cfg already holds.
func Parse(name string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(stripQuery(name))); ext {
	case ".yaml", ".yml":
		return decodeYAML(data, cfg)
	case ".hcl":
		return decodeHCL(name, data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

func decodeYAML(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("%w:\n%s", ErrParseConfig, yaml.FormatError(err, false, true))
	}

	return nil
}

// stripQuery drops a go-getter query string such as ?ref=main so the extension can be read.
func stripQuery(name string) string {
	if i := strings.Index(name, goGetterRefSeparator); i >= 0 {
		return name[:i]
	}

	return name
}
