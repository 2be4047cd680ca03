// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decorates console output with ANSI escape codes.
// Output is colored when stdout is a terminal, unless NO_COLOR is set.
// FORCE_COLOR enables color for non-terminal output.
package color
