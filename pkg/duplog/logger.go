// Asynchronous logger that collapses repeated messages into aggregated records
package duplog

import (
	"duplog/internal/queue/fifo"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

// Producer handle for one pipeline. Safe for concurrent use; share the pointer between goroutines.
type Logger struct {
	queue   *fifo.Queue[Message]
	done    chan struct{}
	report  func(err error)
	metrics *metricStorage

	pushes          atomic.Uint64 // successful Log calls, drives backlog sampling
	backlogReported atomic.Bool
}

// Starts the pipeline goroutine and waits for it to build its writer
func New(cfg Config) (logger *Logger, err error) {
	err = cfg.validate()
	if err != nil {
		return
	}

	newLogger := &Logger{
		queue:   fifo.New[Message](),
		done:    make(chan struct{}),
		report:  cfg.ErrorHandler,
		metrics: &metricStorage{},
	}

	ready := make(chan error, 1)
	go newLogger.receive(cfg.DupMsgScope, cfg.WriterFactory, ready)

	err = <-ready
	if err != nil {
		<-newLogger.done
		err = fmt.Errorf("failed to start log pipeline: %w", err)
		return
	}

	logger = newLogger
	return
}

// Pipeline goroutine: sole owner of the window, pending table and writer
func (logger *Logger) receive(scope int, factory WriterFactory, ready chan<- error) {
	defer close(logger.done)

	writer, err := buildWriter(factory)
	ready <- err
	if err != nil {
		logger.queue.Close()
		return
	}

	p := newPipeline(scope, writer, logger.report, logger.metrics)
	for {
		msg, ok := logger.queue.Pop()
		if !ok {
			// Stream end
			break
		}
		if msg.Level == LevelShutdown {
			break
		}
		p.process(msg)
	}

	p.drain()
	p.close()
}

func buildWriter(factory WriterFactory) (writer Writer, err error) {
	defer func() {
		if fatalError := recover(); fatalError != nil {
			err = fmt.Errorf("panic in writer factory: %v\n%s", fatalError, debug.Stack())
		}
	}()

	writer, err = factory()
	if err == nil && writer == nil {
		err = ErrNilWriter
	}
	return
}

// Queues a message stamped with the current time. Never blocks on the writer.
// Fails with ErrClosed after Shutdown.
func (logger *Logger) Log(level Level, text string) (err error) {
	if level == LevelShutdown {
		err = ErrReservedLevel
		return
	}
	if !level.Valid() {
		err = fmt.Errorf("%w: %d", ErrInvalidLevel, uint8(level))
		return
	}

	msg := NewMessage(level, text)
	err = logger.queue.Push(msg, msg.size())
	if err != nil {
		err = fmt.Errorf("%w: dropped [%s] %q", ErrClosed, level, text)
		return
	}

	logger.checkBacklog()
	return
}

// Log with printf style formatting. Text without verbs or without vars is logged as-is.
func (logger *Logger) Logf(level Level, format string, vars ...any) (err error) {
	text := format
	if len(vars) > 0 && strings.Contains(format, "%") {
		text = fmt.Sprintf(format, vars...)
	}
	err = logger.Log(level, text)
	return
}

// Queues the shutdown sentinel behind all messages logged so far and returns.
// Use Wait or Done to know when the final flush finished.
func (logger *Logger) Shutdown() (err error) {
	err = logger.queue.PushLast(NewMessage(LevelShutdown, ""), 0)
	if err != nil {
		err = ErrClosed
		return
	}
	return
}

// Closed once the pipeline has flushed everything and exited
func (logger *Logger) Done() (done <-chan struct{}) {
	done = logger.done
	return
}

// Blocks until the pipeline has exited
func (logger *Logger) Wait() {
	<-logger.done
}

// Shuts down (if not already) and waits for the final flush
func (logger *Logger) Close() (err error) {
	err = logger.Shutdown()
	if errors.Is(err, ErrClosed) {
		err = nil
	}
	logger.Wait()
	return
}
