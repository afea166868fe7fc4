// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package metrics exports benchmark results as Prometheus metrics in the
// node exporter textfile format, for collection by a textfile collector.
package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lfbench"

// ErrWriteMetrics is returned when the textfile cannot be written.
var ErrWriteMetrics = errors.New("failed to write metrics textfile")

// Collect registers the metrics for results on a new registry.
func Collect(results benchrun.SuiteResults, original bool) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"original": strconv.FormatBool(original)}

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Name:        "transform_duration_milliseconds",
		Help:        "Time for all repeats of the transform on one input.",
		Buckets:     prometheus.ExponentialBuckets(1, 2, 14),
		ConstLabels: constLabels,
	}, []string{"suite"})

	summary := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "summary_milliseconds",
		Help:        "Shortest, longest and average time per input for a suite.",
		ConstLabels: constLabels,
	}, []string{"suite", "stat"})

	inputBytes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "input_bytes_total",
		Help:        "Bytes of input transformed, counting each input once.",
		ConstLabels: constLabels,
	}, []string{"suite"})

	warmup := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "warmup_milliseconds",
		Help:        "Duration of the untimed warmup call.",
		ConstLabels: constLabels,
	}, []string{"suite"})

	for _, c := range []prometheus.Collector{duration, summary, inputBytes, warmup} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	for _, res := range results {
		for _, t := range res.Timings {
			duration.WithLabelValues(res.Name).Observe(float64(t.Elapsed))
		}

		summary.WithLabelValues(res.Name, "shortest").Set(float64(res.Summary.Shortest.Elapsed))
		summary.WithLabelValues(res.Name, "longest").Set(float64(res.Summary.Longest.Elapsed))
		summary.WithLabelValues(res.Name, "average").Set(res.Summary.AverageMs)
		inputBytes.WithLabelValues(res.Name).Add(float64(res.Timings.TotalBytes()))
		warmup.WithLabelValues(res.Name).Set(float64(res.Warmup.Milliseconds()))
	}

	return reg, nil
}

// WriteTextfile writes the metrics for results to filename.
// The file is written to a temporary name and renamed, so collectors never see a partial file.
func WriteTextfile(filename string, results benchrun.SuiteResults, original bool) error {
	reg, err := Collect(results, original)
	if err != nil {
		return errors.Join(ErrWriteMetrics, err)
	}

	if err := prometheus.WriteToTextfile(filename, reg); err != nil {
		return errors.Join(ErrWriteMetrics, err)
	}

	return nil
}
