// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

// Reporter is the interface for publishing launcher progress.
// Implementations must be safe for concurrent use and must never block.
type Reporter interface {
	// Stage reports the overall fraction and status lines with no bar text.
	// A nil action keeps the action text that is currently displayed.
	Stage(overall float64, action *string, subAction string)
	// StageText is Stage with an optional text shown in place of the percentage.
	StageText(overall float64, action *string, subAction string, progressText *string)
	// StageRange maps done/total of a sub-task into the [start, end] window of
	// the overall progress and formats done/total as the bar text.
	// If mib is true the counters are bytes and are displayed in MiB.
	StageRange(start, end float64, action *string, subAction string, done, total int64, mib bool)
}

// NullReporter is a no-op implementation of Reporter.
// Used when progress reporting is not needed.
type NullReporter struct{}

// Stage implements Reporter.Stage by doing nothing.
func (NullReporter) Stage(float64, *string, string) {}

// StageText implements Reporter.StageText by doing nothing.
func (NullReporter) StageText(float64, *string, string, *string) {}

// StageRange implements Reporter.StageRange by doing nothing.
func (NullReporter) StageRange(float64, float64, *string, string, int64, int64, bool) {}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() Reporter {
	return NullReporter{}
}

// String returns a pointer to s, for the optional text arguments of Reporter.
func String(s string) *string {
	return &s
}
