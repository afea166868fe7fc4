// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"

	"github.com/matt-FFFFFF/lfbench/cmd/lfbench/run"
	"github.com/urfave/cli/v3"
)

// NewConfigCmd returns the command that prints the effective configuration.
// It honours the same flags and MODE argument as the benchmark.
func NewConfigCmd() *cli.Command {
	return &cli.Command{
		Name:        "config",
		Usage:       "Print the effective configuration as YAML",
		Description: "Print the configuration a benchmark run would use, after the config file, flags and MODE are applied.",
		Arguments:   run.Arguments(),
		Action:      actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := run.LoadConfig(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	b, err := cfg.YAML()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if _, err := cmd.Root().Writer.Write(b); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
