// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui provides the terminal surfaces for the launcher splash.
//
// Open runs a Bubble Tea program per splash window: the logo drawn with
// half-block cells, the action line, a bubbles progress bar and the sub-action
// line, centered on the alternate screen. OpenPlain writes one line per
// visible change for output that is not a terminal.
package tui
