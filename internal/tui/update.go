// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/progress"
)

const (
	defaultBarWidth  = 40
	barMargin        = 8
	durationRounding = 100 * time.Millisecond
)

// ProgressEventMsg wraps a progress event for the tea framework.
type ProgressEventMsg struct {
	Event progress.Event
}

// SuiteDoneMsg carries the result of a finished suite.
type SuiteDoneMsg struct {
	Result *benchrun.SuiteResult
}

// SessionDoneMsg indicates the session has ended, successfully or not.
type SessionDoneMsg struct {
	Err error
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.mutex.Lock()
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(min(msg.Width-barMargin, defaultBarWidth*2), 10) //nolint:mnd
		m.mutex.Unlock()

		return m, nil

	case ProgressEventMsg:
		m.processProgressEvent(msg.Event)
		return m, nil

	case SuiteDoneMsg:
		if msg.Result != nil {
			m.suiteDone(msg.Result)
		}

		return m, nil

	case SessionDoneMsg:
		m.mutex.Lock()
		m.completed = true
		m.err = msg.Err
		m.mutex.Unlock()

		return m, tea.Quit
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.mutex.Lock()
		m.quitting = true
		m.mutex.Unlock()

		m.cancel()

		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.quitting && !m.completed {
		return "Abandoning benchmark...\n"
	}

	var view strings.Builder

	view.WriteString(m.styles.Title.Render("lfbench: comma to line feed"))
	view.WriteString("\n")

	for _, node := range m.suites {
		m.renderSuite(&view, node)
	}

	if cur := m.current(); cur != nil && cur.Phase == PhaseTiming {
		view.WriteString("\n  ")
		view.WriteString(m.bar.ViewAs(cur.Fraction()))
		view.WriteString(m.styles.Detail.Render(fmt.Sprintf("  %d/%d", cur.Timed, cur.Total)))
		view.WriteString("\n")
	}

	help := "q to abandon the benchmark"
	if m.completed {
		help = "done"
	}

	view.WriteString(m.styles.Help.Render(help))
	view.WriteString("\n")

	return view.String()
}

// renderSuite writes one suite line, plus its summary when finished.
func (m *Model) renderSuite(b *strings.Builder, node *SuiteNode) {
	var icon, name string

	switch node.Phase {
	case PhasePending:
		icon = "⏳"
		name = m.styles.Pending.Render(node.Name)
	case PhaseGenerating, PhaseWarmup, PhaseTiming:
		icon = "⚡"
		name = m.styles.Running.Render(node.Name)
	case PhaseDone:
		icon = "✅"
		name = m.styles.Success.Render(node.Name)
	case PhaseFailed:
		icon = "❌"
		name = m.styles.Failed.Render(node.Name)
	default:
		icon = "❓"
		name = m.styles.Pending.Render(node.Name)
	}

	fmt.Fprintf(b, "%s %s", icon, name) // nolint:errcheck

	if node.StartTime != nil {
		elapsed := m.now().Sub(*node.StartTime)
		if node.EndTime != nil {
			elapsed = node.EndTime.Sub(*node.StartTime)
		}

		b.WriteString(m.styles.Detail.Render(fmt.Sprintf(" (%v)", elapsed.Round(durationRounding))))
	}

	switch node.Phase {
	case PhaseGenerating:
		b.WriteString(m.styles.Detail.Render("  generating source data"))
	case PhaseWarmup:
		b.WriteString(m.styles.Detail.Render("  warmup"))
	case PhaseTiming:
		b.WriteString(m.styles.Detail.Render(fmt.Sprintf(
			"  %d repetitions per string, last %d ms", node.Repeats, node.Last.Milliseconds())))
	case PhaseFailed:
		b.WriteString(m.styles.Failed.Render("  " + node.ErrorMsg))
	}

	b.WriteString("\n")

	if node.Phase == PhaseDone && node.Summary != nil {
		s := node.Summary
		b.WriteString(m.styles.Detail.Render(fmt.Sprintf(
			"    shortest %d ms, longest %d ms, average %s ms, warmup %d ms",
			s.Shortest.Elapsed, s.Longest.Elapsed, s.Average(), node.Warmup.Milliseconds())))
		b.WriteString("\n")
	}
}
