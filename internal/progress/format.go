// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"math"
)

const (
	// BarMax is the maximum value of the progress bar, giving 0.1% resolution.
	BarMax = 1000

	mebibyte = 1024 * 1024
	// mibCeil is added to MiB totals so a fractional total is not under-reported.
	mibCeil = 0.1
)

// Interpolate maps done/total into the [start, end] window.
// A zero total is treated as a finished sub-task and returns end.
func Interpolate(start, end float64, done, total int64) float64 {
	if total == 0 {
		return end
	}

	return start + (end-start)*float64(done)/float64(total)
}

// FormatCount formats counters as "<done> / <total>".
func FormatCount(done, total int64) string {
	return fmt.Sprintf("%d / %d", done, total)
}

// FormatMiB formats byte counters as mebibytes with one decimal place.
func FormatMiB(done, total int64) string {
	return fmt.Sprintf("%.1f / %.1f MiB", float64(done)/mebibyte, float64(total)/mebibyte+mibCeil)
}

// FormatRange returns the bar text used by StageRange.
func FormatRange(done, total int64, mib bool) string {
	if mib {
		return FormatMiB(done, total)
	}

	return FormatCount(done, total)
}

// BarValue converts an overall fraction into a bar value in [0, BarMax].
func BarValue(overall float64) int {
	if math.IsNaN(overall) {
		return 0
	}

	v := math.Round(overall * BarMax)

	switch {
	case v < 0:
		return 0
	case v > BarMax:
		return BarMax
	}

	return int(v)
}
