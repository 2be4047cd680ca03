// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package splash implements the launcher splash: a single window showing a
// logo, an action line, a progress bar and a sub-action line while the
// launcher initializes.
//
// A Splash is a handle owned by whatever runs the launcher lifecycle. It is
// passed to workers as a progress.Reporter. The window itself lives on a
// dedicated UI goroutine: Init blocks until the window is built, Stop queues
// its disposal, and the Stage methods only store values that a 100ms render
// tick copies onto the surface.
//
// Failing to build the window is logged and otherwise ignored; the launcher
// keeps going without a splash and every Stage call becomes a no-op.
package splash
