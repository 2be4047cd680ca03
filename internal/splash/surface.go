// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package splash

import (
	"context"
	"image"

	"github.com/matt-FFFFFF/splash/internal/theme"
)

// Frame is what a surface displays after a render tick.
type Frame struct {
	Action    string
	SubAction string
	Value     int    // bar value in [0, Max]
	Max       int    // bar maximum
	Text      string // bar label, used when ShowText is set
	ShowText  bool   // false shows the bare percentage
}

// Percent returns the bar value as a fraction.
func (f Frame) Percent() float64 {
	if f.Max <= 0 {
		return 0
	}

	return float64(f.Value) / float64(f.Max)
}

// WindowSpec describes the window a surface must open.
type WindowSpec struct {
	Title string
	Logo  image.Image
	Theme theme.Theme
	// OnClose must be called when the user asks to close the window.
	// It may be called from any goroutine.
	OnClose func()
}

// Surface is an open splash window.
// Render and Close are only called from the UI goroutine.
type Surface interface {
	Render(frame Frame)
	Close() error
}

// SurfaceFactory opens a surface. It runs on the UI goroutine and must not
// return until the surface is visible or has failed.
type SurfaceFactory func(ctx context.Context, spec WindowSpec) (Surface, error)
