// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		done       int64
		total      int64
		expected   float64
	}{
		{
			name:     "half of full range",
			start:    0,
			end:      1,
			done:     5,
			total:    10,
			expected: 0.5,
		},
		{
			name:     "half of sub window",
			start:    0.2,
			end:      0.6,
			done:     1,
			total:    2,
			expected: 0.4,
		},
		{
			name:     "nothing done",
			start:    0.3,
			end:      0.9,
			done:     0,
			total:    100,
			expected: 0.3,
		},
		{
			name:     "zero total is complete",
			start:    0.1,
			end:      0.7,
			done:     0,
			total:    0,
			expected: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Interpolate(tt.start, tt.end, tt.done, tt.total), 1e-9)
		})
	}
}

func TestFormatRange(t *testing.T) {
	tests := []struct {
		name     string
		done     int64
		total    int64
		mib      bool
		expected string
	}{
		{
			name:     "count",
			done:     5,
			total:    10,
			expected: "5 / 10",
		},
		{
			name:     "mib with ceiling nudge",
			done:     1048576,
			total:    10485760,
			mib:      true,
			expected: "1.0 / 10.1 MiB",
		},
		{
			name:     "mib fractional",
			done:     3355443,
			total:    10485760,
			mib:      true,
			expected: "3.2 / 10.1 MiB",
		},
		{
			name:     "zero total",
			done:     0,
			total:    0,
			expected: "0 / 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRange(tt.done, tt.total, tt.mib))
		})
	}
}

func TestBarValue(t *testing.T) {
	tests := []struct {
		name     string
		overall  float64
		expected int
	}{
		{name: "zero", overall: 0, expected: 0},
		{name: "half", overall: 0.5, expected: 500},
		{name: "tenth of a percent", overall: 0.0004, expected: 0},
		{name: "rounds up", overall: 0.0005, expected: 1},
		{name: "full", overall: 1, expected: BarMax},
		{name: "clamped high", overall: 1.5, expected: BarMax},
		{name: "clamped low", overall: -0.2, expected: 0},
		{name: "nan", overall: math.NaN(), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BarValue(tt.overall))
		})
	}
}
