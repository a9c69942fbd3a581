package duplog

import "sync/atomic"

// Point in time view of pipeline counters
type Stats struct {
	Received    uint64 // messages taken off the queue (sentinel excluded)
	Written     uint64 // individual messages accepted by the writer
	Duplicates  uint64 // messages folded into an aggregate instead of written
	Aggregates  uint64 // aggregates accepted by the writer
	WriteErrors uint64 // writer calls that returned an error
	Panics      uint64 // writer calls that panicked
	QueueDepth  int    // messages waiting for the pipeline
}

type metricStorage struct {
	Received    atomic.Uint64
	Written     atomic.Uint64
	Duplicates  atomic.Uint64
	Aggregates  atomic.Uint64
	WriteErrors atomic.Uint64
	Panics      atomic.Uint64
}

// Current pipeline counters
func (logger *Logger) Stats() (stats Stats) {
	stats = Stats{
		Received:    logger.metrics.Received.Load(),
		Written:     logger.metrics.Written.Load(),
		Duplicates:  logger.metrics.Duplicates.Load(),
		Aggregates:  logger.metrics.Aggregates.Load(),
		WriteErrors: logger.metrics.WriteErrors.Load(),
		Panics:      logger.metrics.Panics.Load(),
		QueueDepth:  logger.queue.Len(),
	}
	return
}
