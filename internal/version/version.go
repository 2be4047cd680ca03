// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version provides the version and commit information for splash.
package version

import "fmt"

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// String returns the version and commit as a single line.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
