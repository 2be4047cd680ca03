// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"math"
	"sync/atomic"
)

// DefaultAction is the action text shown before anything is staged.
const DefaultAction = "Loading"

// State holds the most recently reported values.
// Every field is stored independently, so a reader may observe fields from
// different Apply calls. No field depends on another.
type State struct {
	overall      atomic.Uint64
	action       atomic.Pointer[string]
	subAction    atomic.Pointer[string]
	progressText atomic.Pointer[string]
}

// Snapshot is a point-in-time copy of a State.
type Snapshot struct {
	Overall      float64
	Action       string
	SubAction    string
	ProgressText *string // nil means show the bare percentage
}

// NewState creates a State with the initial display values.
func NewState() *State {
	s := &State{}
	s.action.Store(String(DefaultAction))
	s.subAction.Store(String(""))

	return s
}

// Apply stores a staged update. The action is only replaced when non-nil,
// sub-action and progress text are always replaced.
func (s *State) Apply(overall float64, action *string, subAction string, progressText *string) {
	s.overall.Store(math.Float64bits(overall))

	if action != nil {
		s.action.Store(String(*action))
	}

	s.subAction.Store(&subAction)

	if progressText != nil {
		progressText = String(*progressText)
	}

	s.progressText.Store(progressText)
}

// Snapshot loads the current values.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Overall:      math.Float64frombits(s.overall.Load()),
		ProgressText: s.progressText.Load(),
	}

	if a := s.action.Load(); a != nil {
		snap.Action = *a
	}

	if sa := s.subAction.Load(); sa != nil {
		snap.SubAction = *sa
	}

	return snap
}
