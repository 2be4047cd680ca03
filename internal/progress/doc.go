// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress provides the progress reporting contract used by launcher
// components. Components receive a Reporter handle and call its Stage methods
// from any goroutine; the implementation decides how, and whether, the values
// are displayed.
//
// The package also holds the last-write-wins State shared between reporting
// goroutines and the goroutine that renders it, and the helpers that turn a
// sub-task's done/total counters into an overall fraction and a display string.
package progress
