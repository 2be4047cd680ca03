// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the splash command-line application.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/matt-FFFFFF/splash/cmd"
	"github.com/matt-FFFFFF/splash/internal/ctxlog"
	"github.com/matt-FFFFFF/splash/internal/signalbroker"
	"golang.org/x/term"
)

const forcedExitCode = 130

func main() {
	root := ctxlog.New(context.Background(), logger())

	ctx, cancel := context.WithCancel(root)
	defer cancel()

	// signals outlive ctx so a second one can still force the exit
	sigCtx, stopSignals := context.WithCancel(root)

	go signalbroker.Watch(root, signalbroker.New(sigCtx), cancel, func() {
		ctxlog.Error(root, "forced exit")
		os.Exit(forcedExitCode)
	})

	err := cmd.RootCmd.Run(ctx, os.Args)

	stopSignals()

	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
	os.Exit(0)
}

// logger returns the pretty logger for terminals and JSON lines otherwise.
func logger() *slog.Logger {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return ctxlog.DefaultLogger
	}

	return ctxlog.JSONLogger
}
