// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package benchreport builds the machine-readable JSON report of a benchmark run.
package benchreport

import (
	"encoding/json"
	"errors"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/config"
)

// Version identifies the report layout.
const Version = "lfbench.report.v1"

// ErrWriteReport is returned when the report cannot be encoded.
var ErrWriteReport = errors.New("failed to write JSON report")

// Env describes the machine the benchmark ran on.
type Env struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	CPUNumLogical int    `json:"cpu_num_logical"`
	GoVersion     string `json:"go_version"`
}

// TimingRecord is one input's measurement.
type TimingRecord struct {
	ElapsedMs      int64 `json:"elapsed_ms"`
	ElapsedNs      int64 `json:"elapsed_ns"`
	StringLen      int   `json:"string_len"`
	StringBytesLen int   `json:"string_bytes_len"`
}

// SuiteSummary mirrors the printed results block.
type SuiteSummary struct {
	Shortest  TimingRecord `json:"shortest"`
	Longest   TimingRecord `json:"longest"`
	AverageMs float64      `json:"average_ms"`
}

// Suite is the report of one suite.
type Suite struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Repeats     int            `json:"repeats"`
	WarmupMs    int64          `json:"warmup_ms"`
	Timings     []TimingRecord `json:"timings"`
	Summary     SuiteSummary   `json:"summary"`
}

// Report is the full JSON document.
type Report struct {
	Version          string         `json:"version"`
	RunID            string         `json:"run_id"`
	TimestampRFC3339 string         `json:"timestamp_rfc3339"`
	Original         bool           `json:"original"`
	Env              Env            `json:"env"`
	Params           *config.Config `json:"params"`
	Suites           []Suite        `json:"suites"`
}

// New builds a Report for results produced with cfg, stamped with a fresh run ID.
func New(cfg *config.Config, results benchrun.SuiteResults, at time.Time) *Report {
	r := &Report{
		Version:          Version,
		RunID:            uuid.NewString(),
		TimestampRFC3339: at.UTC().Format(time.RFC3339),
		Original:         cfg.Original(),
		Env: Env{
			OS:            runtime.GOOS,
			Arch:          runtime.GOARCH,
			CPUNumLogical: runtime.NumCPU(),
			GoVersion:     runtime.Version(),
		},
		Params: cfg,
		Suites: make([]Suite, 0, len(results)),
	}

	for _, res := range results {
		s := Suite{
			Name:        res.Name,
			Description: res.Description,
			Repeats:     res.Repeats,
			WarmupMs:    res.Warmup.Milliseconds(),
			Timings:     make([]TimingRecord, 0, len(res.Timings)),
			Summary: SuiteSummary{
				Shortest:  record(res.Summary.Shortest),
				Longest:   record(res.Summary.Longest),
				AverageMs: res.Summary.AverageMs,
			},
		}

		for _, t := range res.Timings {
			s.Timings = append(s.Timings, record(t))
		}

		r.Suites = append(r.Suites, s)
	}

	return r
}

// Write encodes the report as indented JSON.
func (r *Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	return nil
}

func record(t benchrun.Timing) TimingRecord {
	return TimingRecord{
		ElapsedMs:      t.Elapsed,
		ElapsedNs:      t.Duration.Nanoseconds(),
		StringLen:      t.StringLen,
		StringBytesLen: t.StringBytesLen,
	}
}
