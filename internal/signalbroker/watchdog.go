// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/splash/internal/ctxlog"
)

// Watch monitors the signal channel until it is closed.
// The first signal calls cancel so the launcher can stop its splash and unwind.
// A second signal of a type already seen calls force and returns.
// ctx is only used for logging and must not be the context cancel belongs to.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc, force func()) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, dup := seen[sig]; dup {
			ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, forcing exit", "signal", sig.String())

			if force != nil {
				force()
			}

			return
		}

		ctxlog.Info(ctx, "watchdog", "detail", "received signal, cancelling", "signal", sig.String())

		seen[sig] = struct{}{}

		cancel()
	}
}
