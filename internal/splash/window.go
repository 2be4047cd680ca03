// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package splash

import (
	"sync/atomic"

	"github.com/matt-FFFFFF/splash/internal/progress"
	"github.com/matt-FFFFFF/splash/internal/uiloop"
)

// window is one shown splash. surface and ticker belong to the UI goroutine;
// state is written by reporters and read by render.
type window struct {
	state   *progress.State
	surface Surface
	ticker  *uiloop.Ticker
	onClose atomic.Pointer[func()]
}

// render copies the staged values onto the surface.
func (w *window) render() {
	w.surface.Render(frameOf(w.state.Snapshot()))
}

func (w *window) requestClose() {
	if f := w.onClose.Load(); f != nil {
		(*f)()
	}
}

func frameOf(snap progress.Snapshot) Frame {
	f := Frame{
		Action:    snap.Action,
		SubAction: snap.SubAction,
		Value:     progress.BarValue(snap.Overall),
		Max:       progress.BarMax,
	}

	if snap.ProgressText != nil {
		f.Text = *snap.ProgressText
		f.ShowText = true
	}

	return f
}
