// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the splash configuration: window title, logo, surface
// mode, theme and the bootstrap steps the launcher reports progress for.
//
// Files ending in .yaml or .yml are decoded as YAML. Files ending in .hcl are
// decoded as HCL, where the environment is available as `env`, e.g.
// `title = "Launcher for ${env.USER}"`. Fields left out take their defaults.
package config
