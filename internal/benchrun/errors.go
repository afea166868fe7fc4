// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputs is returned when a runner is given nothing to time.
	ErrNoInputs = errors.New("no inputs to benchmark")
	// ErrInvalidRepeats is returned when the repeat count is less than one.
	ErrInvalidRepeats = errors.New("repeats must be at least 1")
	// ErrNoTimings is returned when summarising an empty set of timings.
	ErrNoTimings = errors.New("no timings to summarise")
)

// ErrTransformPanic is returned when the transform under test panics.
// It is constructed with the value that caused the panic.
type ErrTransformPanic struct {
	v any
}

// Error implements the error interface.
func (e *ErrTransformPanic) Error() string {
	prefix := "transform panic:"

	switch x := e.v.(type) {
	case string:
		return fmt.Sprintf("%s %s", prefix, x)
	case error:
		return fmt.Sprintf("%s %s", prefix, x.Error())
	default:
		return fmt.Sprintf("%s %v", prefix, x)
	}
}

// NewErrTransformPanic creates a new ErrTransformPanic with the given value.
func NewErrTransformPanic(v any) error {
	return &ErrTransformPanic{v: v}
}
