package duplog

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrClosed          = errors.New("logger is shut down")
	ErrInvalidScope    = errors.New("duplicate message scope must be at least 1")
	ErrNoWriterFactory = errors.New("no writer factory configured")
	ErrNilWriter       = errors.New("writer factory returned nil writer")
	ErrReservedLevel   = errors.New("shutdown level is reserved for Shutdown()")
	ErrInvalidLevel    = errors.New("invalid log level")
	ErrBacklog         = errors.New("log backlog is growing faster than it is written")
)

type Config struct {
	// Number of most recent distinct messages a repeat is recognised against (N >= 1)
	DupMsgScope int

	// Builds the output sink inside the pipeline goroutine
	WriterFactory WriterFactory

	// Receives sink failures, recovered panics and backlog warnings.
	// May be called from producer goroutines as well as the pipeline; must be safe for concurrent use.
	// Nil prints to stderr.
	ErrorHandler func(err error)
}

// Default error reporting destination
func reportToStderr(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// Checks for unusable values and fills optional ones
func (cfg *Config) validate() (err error) {
	if cfg.DupMsgScope < 1 {
		err = fmt.Errorf("%w (got %d)", ErrInvalidScope, cfg.DupMsgScope)
		return
	}
	if cfg.WriterFactory == nil {
		err = ErrNoWriterFactory
		return
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = reportToStderr
	}
	return
}
