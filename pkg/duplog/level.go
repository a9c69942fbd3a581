package duplog

import (
	"fmt"
	"strings"
)

// Severity of a message. LevelShutdown is a control signal for the pipeline, never a real severity.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelShutdown
)

var levelNames = [...]string{
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarn:     "WARN",
	LevelError:    "ERROR",
	LevelShutdown: "SHUTDOWN",
}

// Stable display name
func (level Level) String() (name string) {
	if int(level) < len(levelNames) {
		name = levelNames[level]
		return
	}
	name = fmt.Sprintf("LEVEL(%d)", uint8(level))
	return
}

// Reports whether level is a severity producers may log with
func (level Level) Valid() (ok bool) {
	ok = level <= LevelError
	return
}

// Converts a level name (any case) into a Level. The shutdown sentinel is not accepted.
func ParseLevel(name string) (level Level, err error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for candidate := LevelDebug; candidate <= LevelError; candidate++ {
		if levelNames[candidate] == upper {
			level = candidate
			return
		}
	}
	// Common alias
	if upper == "WARNING" {
		level = LevelWarn
		return
	}
	err = fmt.Errorf("%w '%s'", ErrInvalidLevel, name)
	return
}
