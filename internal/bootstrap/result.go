// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package bootstrap

import (
	"slices"
	"time"
)

// Status is the outcome of a step.
type Status int

// Step statuses.
const (
	StatusSuccess Status = iota
	StatusCancelled
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusCancelled:
		return "cancelled"
	case StatusSkipped:
		return "skipped"
	}

	return "unknown"
}

// Result is the outcome of one step.
type Result struct {
	Label    string
	Status   Status
	Start    float64 // overall progress at the start of the step
	End      float64 // overall progress at the end of the step
	Duration time.Duration
	Error    error
}

// Results is the outcome of a run, in step order.
type Results []*Result

// HasError reports whether any step did not succeed.
func (r Results) HasError() bool {
	return slices.ContainsFunc(r, func(v *Result) bool {
		return v.Error != nil || v.Status != StatusSuccess
	})
}
