// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run contains the benchmark action of the lfbench root command.
package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/config"
	"github.com/matt-FFFFFF/lfbench/internal/ctxlog"
	"github.com/matt-FFFFFF/lfbench/internal/progress"
	"github.com/matt-FFFFFF/lfbench/internal/textgen"
	"github.com/matt-FFFFFF/lfbench/internal/tui"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

const (
	modeArg          = "mode"
	configFlag       = "config"
	repeatsFlag      = "repeats"
	batchSizeFlag    = "batch-size"
	minLengthFlag    = "min-length"
	lengthSpreadFlag = "length-spread"
	recordCountFlag  = "record-count"
	seedFlag         = "seed"
	outFlag          = "out"
	jsonFlag         = "json"
	metricsFileFlag  = "metrics-file"
	tuiFlag          = "tui"

	configEnvVar = "LFBENCH_CONFIG"
)

var (
	// ErrLoadConfig is returned when the configuration cannot be loaded.
	ErrLoadConfig = errors.New("failed to load configuration")
	// ErrInvalidConfig is returned when the effective configuration does not validate.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrBenchmark is returned when a suite does not complete.
	ErrBenchmark = errors.New("benchmark failed")
)

// Flags returns the flags of the benchmark action.
// They are built on each call so that every command owns its flag state.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Load parameters from a YAML or HCL file, local path or go-getter URL",
			TakesFile: true,
			Sources:   cli.EnvVars(configEnvVar),
		},
		&cli.IntFlag{
			Name:        repeatsFlag,
			Usage:       "Number of timed transforms per input",
			DefaultText: fmt.Sprint(config.DefaultRepeats),
		},
		&cli.IntFlag{
			Name:        batchSizeFlag,
			Usage:       "Number of inputs generated per suite",
			DefaultText: fmt.Sprint(config.DefaultBatchSize),
		},
		&cli.IntFlag{
			Name:        minLengthFlag,
			Usage:       "Shortest random length string",
			DefaultText: fmt.Sprint(config.DefaultMinLength),
		},
		&cli.IntFlag{
			Name:        lengthSpreadFlag,
			Usage:       "Random length strings are min-length plus up to this many characters",
			DefaultText: fmt.Sprint(config.DefaultLengthSpread),
		},
		&cli.IntFlag{
			Name:        recordCountFlag,
			Usage:       "Number of e-mail records per same length string",
			DefaultText: fmt.Sprint(config.DefaultRecordCount),
		},
		&cli.Uint64Flag{
			Name:        seedFlag,
			Usage:       "Seed for the random source, 0 seeds from system state",
			DefaultText: "0",
		},
		&cli.StringFlag{
			Name:      outFlag,
			Aliases:   []string{"o"},
			Usage:     "Save the results in binary form, replay them with the show command",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      jsonFlag,
			Usage:     "Write a JSON report to this file, - writes to stdout",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      metricsFileFlag,
			Usage:     "Write Prometheus metrics in the node exporter textfile format",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:        tuiFlag,
			Aliases:     []string{"t"},
			Usage:       "Show an interactive progress view while the benchmark runs",
			DefaultText: "false",
			Value:       false,
		},
	}
}

// Arguments returns the positional arguments of the benchmark action.
func Arguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      modeArg,
			UsageText: "[MODE]",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	}
}

// LoadConfig builds the effective configuration for cmd.
// Defaults are overlaid by the config file, then by flags that were set, then by the MODE argument.
func LoadConfig(ctx context.Context, cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(ctx, cmd.String(configFlag))
	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	if cmd.IsSet(repeatsFlag) {
		cfg.Repeats = cmd.Int(repeatsFlag)
	}

	if cmd.IsSet(batchSizeFlag) {
		cfg.BatchSize = cmd.Int(batchSizeFlag)
	}

	if cmd.IsSet(minLengthFlag) {
		cfg.MinLength = cmd.Int(minLengthFlag)
	}

	if cmd.IsSet(lengthSpreadFlag) {
		cfg.LengthSpread = cmd.Int(lengthSpreadFlag)
	}

	if cmd.IsSet(recordCountFlag) {
		cfg.RecordCount = cmd.Int(recordCountFlag)
	}

	if cmd.IsSet(seedFlag) {
		cfg.Seed = cmd.Uint64(seedFlag)
	}

	if mode := cmd.StringArg(modeArg); mode != "" {
		cfg.Mode = mode
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Action runs both benchmark suites and prints a result block after each one.
func Action(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	cfg, err := LoadConfig(ctx, cmd)
	if err != nil {
		logger.Error("configuration rejected", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	logger.Info("starting benchmark", "config", cfg)

	suites := benchrun.DefaultSuites(textgen.NewSeeded(cfg.Seed), cfg.Params())
	runner := benchrun.NewRunner(cfg.Repeats)

	var results benchrun.SuiteResults

	if cmd.Bool(tuiFlag) {
		results, err = runTUI(ctx, cmd, runner, suites)
	} else {
		session := &benchrun.Session{
			Runner:   runner,
			Reporter: progress.NewTextReporter(cmd.Writer),
			AfterSuite: func(r *benchrun.SuiteResult) error {
				return r.Summary.WriteText(cmd.Writer)
			},
		}
		results, err = session.Run(ctx, suites...)
	}

	if err != nil {
		logger.Error("benchmark did not complete", "error", err, "suites_done", len(results))
		return cli.Exit(errors.Join(ErrBenchmark, err).Error(), 1)
	}

	if err := export(ctx, cmd, cfg, results); err != nil {
		logger.Error("failed to export results", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	logger.Info("benchmark complete", "suites", len(results))

	return nil
}

// runTUI runs the session behind the progress view.
// Logs are held back until the view has released the terminal.
func runTUI(ctx context.Context, cmd *cli.Command, runner *benchrun.Runner, suites []benchrun.Suite) (benchrun.SuiteResults, error) {
	buf := new(bytes.Buffer)
	tuiCtx := ctxlog.NewForTUI(ctx, buf)

	names := lo.Map(suites, func(s benchrun.Suite, _ int) string {
		return s.Name
	})

	results, err := tui.NewRunner().Run(tuiCtx, names,
		func(ctx context.Context, reporter progress.Reporter, onSuite func(*benchrun.SuiteResult) error) (benchrun.SuiteResults, error) {
			session := &benchrun.Session{
				Runner:     runner,
				Reporter:   reporter,
				AfterSuite: onSuite,
			}

			return session.Run(ctx, suites...)
		})

	buf.WriteTo(cmd.ErrWriter) // nolint:errcheck

	if err != nil {
		return results, err
	}

	return results, results.WriteText(cmd.Writer)
}
