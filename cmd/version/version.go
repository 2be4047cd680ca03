// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version contains the version command.
package version

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/splash/internal/version"
	"github.com/urfave/cli/v3"
)

// VersionCmd prints the build version.
var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print the version",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Root().Writer, "splash %s\n", version.String())
		return err
	},
}
