package lifecycle

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// Signals that stop the program gracefully
var stopSignals = []os.Signal{unix.SIGINT, unix.SIGTERM}

// Returns context cancelled on the first stop signal.
// Call stop to release signal handling (a second signal then kills the process).
func SignalContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	ctx, stop = signal.NotifyContext(parent, stopSignals...)
	return
}
