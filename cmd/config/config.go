// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config contains the config command, which prints the effective configuration.
package config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/splash/internal/color"
	"github.com/matt-FFFFFF/splash/internal/config"
	"github.com/urfave/cli/v3"
)

const configFlag = "config"

// ConfigCmd loads the configuration, applies defaults and prints it as JSON.
var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "Print the effective configuration",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to a YAML or HCL config file",
			TakesFile: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	c, err := config.Load(ctx, cmd.String(configFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := Render(c, color.Enabled())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, out)

	return err
}

// Render formats c as indented JSON, colored when colour is set.
func Render(c *config.Config, colour bool) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", err
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !colour

	b, err := f.Marshal(obj)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
