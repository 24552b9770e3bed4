// Package shutdown stops a long-running command cleanly on SIGINT or SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// RunWithGracefulShutdown calls runner and blocks until it returns. When a
// shutdown signal arrives or ctx ends first, stop is called and runner gets
// up to timeout to return on its own.
func RunWithGracefulShutdown(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	runner func(ctx context.Context) error,
	stop func(),
) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	return run(ctx, logger, timeout, sigChan, runner, stop)
}

func run(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	sigChan <-chan os.Signal,
	runner func(ctx context.Context) error,
	stop func(),
) error {
	// Create cancellable context for the runner
	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	// Channel to receive runner completion
	runDone := make(chan error, 1)
	go func() {
		runDone <- runner(runCtx)
	}()

	select {
	case err := <-runDone:
		return err
	case sig := <-sigChan:
		logger.Info("received signal, initiating shutdown", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("context done, initiating shutdown", "error", ctx.Err())
	}

	stop()

	// Wait for runner to finish with timeout
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-runDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	case <-timer.C:
		logger.Warn("shutdown timeout exceeded")
		runCancel()
	}

	logger.Info("shutdown complete")
	return nil
}
