// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import "time"

// SuiteReporter stamps the suite name and a timestamp onto events before
// passing them to the parent. Closing it leaves the parent open.
type SuiteReporter struct {
	parent Reporter
	suite  string
	now    func() time.Time
}

// WithSuite returns a reporter that labels every event with suite.
func WithSuite(parent Reporter, suite string) *SuiteReporter {
	if parent == nil {
		parent = NewNullReporter()
	}

	return &SuiteReporter{
		parent: parent,
		suite:  suite,
		now:    time.Now,
	}
}

// Report implements Reporter.
func (sr *SuiteReporter) Report(event Event) {
	if event.Suite == "" {
		event.Suite = sr.suite
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = sr.now()
	}

	sr.parent.Report(event)
}

// Close implements Reporter. The parent may be shared by other suites so it is not closed.
func (sr *SuiteReporter) Close() {}
