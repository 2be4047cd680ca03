// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package uiloop provides a single goroutine that owns a UI surface.
// Other goroutines hand it work as closures: Post queues fire-and-forget,
// Call waits for the closure to finish. Every schedules a periodic closure
// on the same goroutine, so surface state never needs a lock.
package uiloop
