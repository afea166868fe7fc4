// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event is a single progress update from a benchmark suite.
type Event struct {
	Suite     string    // Suite name, e.g. "random length strings"
	Type      EventType // What happened
	Message   string    // Human-readable status message
	Timestamp time.Time // When the event occurred
	Data      EventData // Type-specific data
}

// EventType represents the type of progress event.
type EventType int

const (
	// EventGenerating indicates input generation has begun.
	EventGenerating EventType = iota
	// EventGenerated indicates all inputs for the suite exist.
	EventGenerated
	// EventWarmupStarted indicates the untimed warmup transform is running.
	EventWarmupStarted
	// EventWarmupDone carries the warmup duration.
	EventWarmupDone
	// EventTimingStarted indicates the timed loop over inputs has begun.
	EventTimingStarted
	// EventInputStarted indicates timing of one input has begun.
	EventInputStarted
	// EventInputTimed carries the elapsed time of all repeats for one input.
	EventInputTimed
	// EventTimingDone indicates every input has a timing record.
	EventTimingDone
	// EventFailed indicates the suite was abandoned.
	EventFailed
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventGenerating:
		return "generating"
	case EventGenerated:
		return "generated"
	case EventWarmupStarted:
		return "warmup started"
	case EventWarmupDone:
		return "warmup done"
	case EventTimingStarted:
		return "timing started"
	case EventInputStarted:
		return "input started"
	case EventInputTimed:
		return "input timed"
	case EventTimingDone:
		return "timing done"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EventData contains type-specific information for progress events.
type EventData struct {
	// For EventGenerated
	Description string // Plural noun phrase for the inputs, e.g. "random length strings"

	// For EventGenerated, EventInputStarted and EventInputTimed
	Index int // Zero-based input index
	Total int // Number of inputs in the suite

	// For EventTimingStarted
	Repeats int

	// For EventWarmupDone and EventInputTimed
	Elapsed time.Duration

	// For EventFailed
	Error error
}

// Reporter is the interface for sending progress events.
type Reporter interface {
	// Report sends a progress event. Implementations must not block the runner.
	Report(event Event)
	// Close signals that no more events will be sent.
	Close()
}

// Listener receives progress events from a ChannelReporter.
type Listener interface {
	OnEvent(event Event)
}

// NullReporter is a no-op implementation of Reporter.
type NullReporter struct{}

// Report does nothing.
func (nr *NullReporter) Report(Event) {}

// Close does nothing.
func (nr *NullReporter) Close() {}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() Reporter {
	return &NullReporter{}
}
