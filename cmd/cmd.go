// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/splash/cmd/config"
	"github.com/matt-FFFFFF/splash/cmd/run"
	"github.com/matt-FFFFFF/splash/cmd/version"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		config.ConfigCmd,
		run.RunCmd,
		version.VersionCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "splash",
	Description: `Splash shows a launcher splash screen in the terminal while the launcher
starts up. It displays a logo, the current action, a progress bar and a detail
line, updated by the bootstrap steps as they run.`,
	Usage:     "splash run --config splash.yaml",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
