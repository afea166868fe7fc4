// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the lfbench command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/lfbench"
	"github.com/matt-FFFFFF/lfbench/cmd/lfbench/config"
	"github.com/matt-FFFFFF/lfbench/cmd/lfbench/run"
	"github.com/matt-FFFFFF/lfbench/cmd/lfbench/show"
	"github.com/matt-FFFFFF/lfbench/internal/ctxlog"
	"github.com/matt-FFFFFF/lfbench/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// newRootCmd returns the root command for the CLI.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			config.NewConfigCmd(),
			show.NewShowCmd(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "lfbench",
		Description: `lfbench measures how long it takes to insert a line feed after every comma
of large generated strings. It times two suites, random length strings and same length
strings of random e-mail addresses, and prints the shortest, longest and average run of each.
Any MODE containing "original" is recorded as an original mode run.`,
		Usage:     "lfbench [--config lfbench.yaml] [MODE]",
		Version:   fmt.Sprintf("%s (commit: %s)", lfbench.Version, lfbench.Commit),
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Flags:                 run.Flags(),
		Arguments:             run.Arguments(),
		Action:                run.Action,
		EnableShellCompletion: true,
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := newRootCmd().Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
