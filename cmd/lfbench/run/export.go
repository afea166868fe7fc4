// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/lfbench/internal/benchreport"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/config"
	"github.com/matt-FFFFFF/lfbench/internal/ctxlog"
	"github.com/matt-FFFFFF/lfbench/internal/metrics"
	"github.com/urfave/cli/v3"
)

const stdoutFileName = "-"

var (
	// ErrCreateFile is returned when an output file cannot be created.
	ErrCreateFile = errors.New("failed to create output file")
	// ErrExport is returned when the results cannot be written to an output file.
	ErrExport = errors.New("failed to export results")
)

// export writes results to each output requested on cmd.
// Every output is attempted and all failures are returned together.
func export(ctx context.Context, cmd *cli.Command, cfg *config.Config, results benchrun.SuiteResults) error {
	var result error

	if name := cmd.String(outFlag); name != "" {
		if err := writeFile(cmd, name, results.WriteBinary); err != nil {
			result = multierror.Append(result, err)
		} else {
			ctxlog.Debug(ctx, "binary results written", "file", name)
		}
	}

	if name := cmd.String(jsonFlag); name != "" {
		report := benchreport.New(cfg, results, time.Now())
		if err := writeFile(cmd, name, report.Write); err != nil {
			result = multierror.Append(result, err)
		} else {
			ctxlog.Debug(ctx, "JSON report written", "file", name, "run_id", report.RunID)
		}
	}

	if name := cmd.String(metricsFileFlag); name != "" {
		if err := metrics.WriteTextfile(name, results, cfg.Original()); err != nil {
			result = multierror.Append(result, err)
		} else {
			ctxlog.Debug(ctx, "metrics written", "file", name)
		}
	}

	if result != nil {
		return errors.Join(ErrExport, result)
	}

	return nil
}

// writeFile creates name and passes it to write. The name "-" writes to the command writer.
func writeFile(cmd *cli.Command, name string, write func(io.Writer) error) error {
	if name == stdoutFileName {
		return write(cmd.Writer)
	}

	f, err := os.Create(name)
	if err != nil {
		return errors.Join(ErrCreateFile, fmt.Errorf("%s: %w", name, err))
	}

	defer f.Close() // nolint:errcheck

	if err := write(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return f.Close()
}
