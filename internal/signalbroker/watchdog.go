// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/lfbench/internal/ctxlog"
)

// Watch reads sigCh until it is closed or ctx is done.
// The second signal of the same kind cancels the run via cancel and stops the broker.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, again := seen[sig]; again {
				ctxlog.Warn(ctx, "second signal received, abandoning benchmark", "signal", sig.String())
				Stop(sigCh)
				cancel()

				return
			}

			ctxlog.Warn(ctx, "signal received, send again to abandon the benchmark", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
