// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/urfave/cli/v3"
)

const (
	fileArg = "file"
)

var (
	// ErrReadFile is returned when the file cannot be read.
	ErrReadFile = errors.New("failed to read file")
	// ErrNoFile is returned when no file argument is given.
	ErrNoFile = errors.New("please provide a results file saved with --out")
	// ErrWriteResults is returned when the results cannot be written to stdout.
	ErrWriteResults = errors.New("failed to write results to stdout")
)

// NewShowCmd returns the command that prints results saved with the --out flag.
func NewShowCmd() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "Print previously saved results",
		Description: "Show previously saved results, one results block per suite.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      fileArg,
				UsageText: "FILE",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			name := cmd.StringArg(fileArg)
			if name == "" {
				return cli.Exit(ErrNoFile.Error(), 1)
			}

			file, err := os.Open(name)
			if err != nil {
				return cli.Exit(errors.Join(ErrReadFile, err).Error(), 1)
			}
			defer file.Close() // nolint:errcheck

			results, err := benchrun.ReadBinary(file)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if err := results.WriteText(cmd.Root().Writer); err != nil {
				return cli.Exit(errors.Join(ErrWriteResults, err).Error(), 1)
			}

			return nil
		},
	}
}
