package shutdown

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"syscall"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRun_RunnerFinishes(t *testing.T) {
	sigs := make(chan os.Signal)
	wantErr := errors.New("boom")
	stopped := false

	err := run(context.Background(), testLogger(), time.Second, sigs,
		func(context.Context) error { return wantErr },
		func() { stopped = true },
	)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if stopped {
		t.Error("stop should not be called when the runner exits on its own")
	}
}

func TestRun_SignalStopsRunner(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	quit := make(chan struct{})
	started := make(chan struct{})

	go func() {
		<-started
		sigs <- syscall.SIGTERM
	}()

	err := run(context.Background(), testLogger(), time.Second, sigs,
		func(context.Context) error {
			close(started)
			<-quit
			return nil
		},
		func() { close(quit) },
	)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_ContextCancelStopsRunner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	quit := make(chan struct{})
	cancel()

	err := run(ctx, testLogger(), time.Second, make(chan os.Signal),
		func(context.Context) error {
			<-quit
			return context.Canceled
		},
		func() { close(quit) },
	)
	if err != nil {
		t.Errorf("context.Canceled should be swallowed, got %v", err)
	}
}

func TestRun_Timeout(t *testing.T) {
	sigs := make(chan os.Signal, 1)
	sigs <- syscall.SIGINT

	start := time.Now()
	err := run(context.Background(), testLogger(), 50*time.Millisecond, sigs,
		func(ctx context.Context) error {
			// Ignores stop and only returns once cancelled
			<-ctx.Done()
			time.Sleep(time.Second)
			return nil
		},
		func() {},
	)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("shutdown took %v, want about the 50ms timeout", elapsed)
	}
}
