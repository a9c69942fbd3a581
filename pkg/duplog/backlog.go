package duplog

import (
	"fmt"

	"github.com/pbnjay/memory"
)

const (
	backlogSampleInterval = 1024 // Log calls between backlog checks
	backlogMemoryDivisor  = 4    // report once queued bytes exceed free/divisor
)

// Overridden in tests
var freeMemory = memory.FreeMemory

// Reports, once per logger, a queue that is eating into free system memory
func (logger *Logger) checkBacklog() {
	if logger.pushes.Add(1)%backlogSampleInterval != 0 {
		return
	}
	if logger.backlogReported.Load() {
		return
	}

	free := freeMemory()
	if free == 0 {
		// Unknown on this platform
		return
	}

	queued := uint64(logger.queue.Bytes())
	if queued <= free/backlogMemoryDivisor {
		return
	}

	if logger.backlogReported.CompareAndSwap(false, true) {
		logger.report(fmt.Errorf("%w: %d messages (%d bytes) waiting with %d bytes of memory free",
			ErrBacklog, logger.queue.Len(), queued, free))
	}
}
