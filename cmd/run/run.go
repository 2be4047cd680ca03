// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run contains the run command, which runs the bootstrap steps under the splash.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/matt-FFFFFF/splash/internal/bootstrap"
	"github.com/matt-FFFFFF/splash/internal/color"
	"github.com/matt-FFFFFF/splash/internal/config"
	"github.com/matt-FFFFFF/splash/internal/ctxlog"
	"github.com/matt-FFFFFF/splash/internal/splash"
	"github.com/matt-FFFFFF/splash/internal/tui"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	configFlag = "config"
	plainFlag  = "plain"
	holdFlag   = "hold"
)

// ErrClosedByUser is returned when the user closed the splash window.
var ErrClosedByUser = errors.New("splash closed by user")

// RunCmd runs the bootstrap steps while the splash shows their progress.
var RunCmd = &cli.Command{
	Name:        "run",
	Usage:       "Run the launcher bootstrap under the splash screen",
	Description: "Loads the configuration, shows the splash and runs each step, reporting progress as it goes.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to a YAML or HCL config file",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  plainFlag,
			Usage: "Print progress lines instead of the full screen splash",
			Value: false,
		},
		&cli.DurationFlag{
			Name:  holdFlag,
			Usage: "Keep the splash open for this long after the last step",
			Value: 0,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	c, err := config.Load(ctx, cmd.String(configFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	s := splash.New(context.WithoutCancel(ctx), splash.Options{
		Title:    c.Title,
		LogoPath: c.Logo,
		Theme:    *c.Theme,
		Surface:  SurfaceFor(c.Surface, cmd.Bool(plainFlag), cmd.Root().Writer),
		OnClose:  func() { cancel(ErrClosedByUser) },
	})
	defer s.Close()

	if err := s.Init(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("failed to start splash: %s", err), 1)
	}

	results, err := bootstrap.New(c.Steps, s).Run(ctx)

	if err == nil && cmd.Duration(holdFlag) > 0 {
		hold(ctx, cmd.Duration(holdFlag))
	}

	s.Stop()

	for _, r := range results {
		ctxlog.Debug(ctx, "step result", "step", r.Label, "status", r.Status.String(), "duration", r.Duration.String())
	}

	if err != nil {
		if cause := context.Cause(ctx); cause != nil && !errors.Is(err, cause) {
			err = fmt.Errorf("%w: %w", err, cause)
		}

		return cli.Exit(err.Error(), 1)
	}

	ctxlog.Info(ctx, "bootstrap complete", "steps", len(results))

	return nil
}

// SurfaceFor picks the surface for a mode. Auto uses the full screen splash
// when stdout is a terminal. The plain surface writes to w.
func SurfaceFor(mode string, forcePlain bool, w io.Writer) splash.SurfaceFactory {
	colour := color.EnabledFor(os.Stdout)

	switch {
	case forcePlain, mode == config.SurfacePlain:
		return tui.OpenPlain(w, colour)
	case mode == config.SurfaceTUI:
		return tui.Open()
	case term.IsTerminal(int(os.Stdout.Fd())):
		return tui.Open()
	default:
		return tui.OpenPlain(w, colour)
	}
}

func hold(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
