// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package benchrun

import (
	"encoding/gob"
	"errors"
	"io"
)

var (
	// ErrWriteGob is returned when writing the results to a binary format fails.
	ErrWriteGob = errors.New("failed to write binary results")
	// ErrReadGob is returned when binary results cannot be decoded.
	ErrReadGob = errors.New("failed to read binary results")
)

// WriteBinary encodes the results to w so they can be shown later.
func (r SuiteResults) WriteBinary(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(r); err != nil {
		return errors.Join(ErrWriteGob, err)
	}

	return nil
}

// ReadBinary decodes results written by WriteBinary.
func ReadBinary(rd io.Reader) (SuiteResults, error) {
	var r SuiteResults
	if err := gob.NewDecoder(rd).Decode(&r); err != nil {
		return nil, errors.Join(ErrReadGob, err)
	}

	return r, nil
}
