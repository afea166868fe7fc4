// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate reports every out of range value at once.
func (c *Config) Validate() error {
	var err error

	check := func(ok bool, name string, v int, want string) {
		if !ok {
			err = multierror.Append(err, fmt.Errorf("%s must be %s, got %d", name, want, v))
		}
	}

	check(c.Repeats >= 1, "repeats", c.Repeats, "at least 1")
	check(c.BatchSize >= 1, "batch_size", c.BatchSize, "at least 1")
	check(c.MinLength >= 1, "min_length", c.MinLength, "at least 1")
	check(c.LengthSpread >= 0, "length_spread", c.LengthSpread, "zero or more")
	check(c.RecordCount >= 0, "record_count", c.RecordCount, "zero or more")

	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}
