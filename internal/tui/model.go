// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"sync"
	"time"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/progress"
)

// Phase is where a suite is in its lifecycle.
type Phase int

const (
	PhasePending Phase = iota
	PhaseGenerating
	PhaseWarmup
	PhaseTiming
	PhaseDone
	PhaseFailed
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseGenerating:
		return "generating"
	case PhaseWarmup:
		return "warmup"
	case PhaseTiming:
		return "timing"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SuiteNode is the display state of one suite.
type SuiteNode struct {
	Name      string
	Phase     Phase
	Total     int               // Inputs in the suite
	Timed     int               // Inputs with a timing record
	Repeats   int               // Transform calls per input
	Warmup    time.Duration     // Warmup duration, once known
	Last      time.Duration     // Elapsed time of the most recent input
	StartTime *time.Time        // First event seen
	EndTime   *time.Time        // Done or failed
	ErrorMsg  string            // Set when failed
	Summary   *benchrun.Summary // Set when done
}

func (n *SuiteNode) start(at time.Time) {
	if n.StartTime == nil {
		n.StartTime = &at
	}
}

func (n *SuiteNode) finish(at time.Time, phase Phase) {
	n.Phase = phase

	if n.EndTime == nil {
		n.EndTime = &at
	}
}

// Fraction is the share of inputs timed so far.
func (n *SuiteNode) Fraction() float64 {
	if n.Total == 0 {
		return 0
	}

	return float64(n.Timed) / float64(n.Total)
}

// Model is the bubbletea model of a benchmark session.
type Model struct {
	cancel    context.CancelFunc // Abandons the benchmark
	suites    []*SuiteNode
	nodeMap   map[string]*SuiteNode
	bar       bprogress.Model
	width     int
	height    int
	quitting  bool
	completed bool
	err       error
	now       func() time.Time
	mutex     sync.RWMutex
	styles    *Styles
}

// Styles contains all the styling for the TUI.
type Styles struct {
	Title   lipgloss.Style
	Pending lipgloss.Style
	Running lipgloss.Style
	Success lipgloss.Style
	Failed  lipgloss.Style
	Detail  lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates the default styling for the TUI.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
	}
}

// NewModel creates a model. cancel is called when the user quits before the session ends.
func NewModel(cancel context.CancelFunc) *Model {
	if cancel == nil {
		cancel = func() {}
	}

	return &Model{
		cancel:  cancel,
		nodeMap: make(map[string]*SuiteNode),
		bar:     bprogress.New(bprogress.WithDefaultGradient(), bprogress.WithWidth(defaultBarWidth)),
		now:     time.Now,
		styles:  NewStyles(),
	}
}

// AddSuites pre-registers suites so they show as pending before they start.
func (m *Model) AddSuites(names ...string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, name := range names {
		m.getOrCreateNode(name)
	}
}

// getOrCreateNode must be called with the mutex held.
func (m *Model) getOrCreateNode(name string) *SuiteNode {
	if node, ok := m.nodeMap[name]; ok {
		return node
	}

	node := &SuiteNode{Name: name}
	m.nodeMap[name] = node
	m.suites = append(m.suites, node)

	return node
}

// processProgressEvent applies a progress event to the suite it belongs to.
func (m *Model) processProgressEvent(event progress.Event) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	node := m.getOrCreateNode(event.Suite)

	at := event.Timestamp
	if at.IsZero() {
		at = m.now()
	}

	node.start(at)

	// A suite that already finished ignores stragglers.
	if node.Phase == PhaseDone || node.Phase == PhaseFailed {
		return
	}

	d := event.Data

	switch event.Type {
	case progress.EventGenerating:
		node.Phase = PhaseGenerating
	case progress.EventGenerated:
		node.Total = d.Total
	case progress.EventWarmupStarted:
		node.Phase = PhaseWarmup
	case progress.EventWarmupDone:
		node.Warmup = d.Elapsed
	case progress.EventTimingStarted:
		node.Phase = PhaseTiming
		node.Repeats = d.Repeats
	case progress.EventInputStarted:
		node.Total = d.Total
	case progress.EventInputTimed:
		node.Total = d.Total
		node.Timed = d.Index + 1
		node.Last = d.Elapsed
	case progress.EventTimingDone:
		node.Timed = node.Total
	case progress.EventFailed:
		node.finish(at, PhaseFailed)

		if d.Error != nil {
			node.ErrorMsg = d.Error.Error()
		}
	}
}

// suiteDone records the final result of a suite.
func (m *Model) suiteDone(res *benchrun.SuiteResult) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	node := m.getOrCreateNode(res.Name)
	summary := res.Summary

	node.Summary = &summary
	node.Total = len(res.Timings)
	node.Timed = node.Total
	node.Warmup = res.Warmup
	node.start(m.now())
	node.finish(m.now(), PhaseDone)
}

// current returns the suite being worked on, or nil.
func (m *Model) current() *SuiteNode {
	for _, n := range m.suites {
		if n.Phase != PhasePending && n.Phase != PhaseDone && n.Phase != PhaseFailed {
			return n
		}
	}

	return nil
}
