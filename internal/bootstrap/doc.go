// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package bootstrap runs the launcher's start-up steps and reports their
// progress to a progress.Reporter.
//
// Steps run serially. Each step owns a slice of the overall progress that is
// proportional to its weight. Work is simulated: a step advances over its
// configured duration in a fixed number of increments.
package bootstrap
