package lifecycle

import (
	"context"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestSignalContext_CancelsOnSignal(t *testing.T) {
	ctx, stop := SignalContext(context.Background())
	defer stop()

	err := unix.Kill(unix.Getpid(), unix.SIGTERM)
	if err != nil {
		t.Fatalf("failed to signal self: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled after SIGTERM")
	}
}
