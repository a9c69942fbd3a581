package duplog

import (
	"fmt"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// Renders messages and aggregates into output lines (without trailing newline).
// Implementations must be free of side effects.
type Formatter interface {
	ToLine(msg Message) (line string)
	ToDupLine(dm *DuplicatedMessages) (line string)
}

// One JSON object per line
type JSONFormatter struct{}

type jsonLine struct {
	Timestamp string `json:"ts"`
	Level     string `json:"level"`
	Message   string `json:"msg"`
	MessageID uint64 `json:"msg_id"`
}

type jsonDupLine struct {
	Start     string `json:"ts"`
	End       string `json:"te"`
	Level     string `json:"level"`
	Message   string `json:"msg"`
	MessageID uint64 `json:"msg_id"`
	Count     uint64 `json:"msg_dup"`
}

// Fmt: '{"ts":"2026-01-01T10:10:10.123456789+02:00","level":"INFO","msg":"text","msg_id":123}'
func (JSONFormatter) ToLine(msg Message) (line string) {
	line = marshalLine(jsonLine{
		Timestamp: msg.Timestamp.Format(time.RFC3339Nano),
		Level:     msg.Level.String(),
		Message:   msg.Text,
		MessageID: msg.ID(),
	})
	return
}

// Fmt: '{"ts":"<start>","te":"<end>","level":"INFO","msg":"text","msg_id":123,"msg_dup":4}'
func (JSONFormatter) ToDupLine(dm *DuplicatedMessages) (line string) {
	msg := dm.Message()
	start, end := dm.TimeRange()
	line = marshalLine(jsonDupLine{
		Start:     start.Format(time.RFC3339Nano),
		End:       end.Format(time.RFC3339Nano),
		Level:     msg.Level.String(),
		Message:   msg.Text,
		MessageID: msg.ID(),
		Count:     dm.Count(),
	})
	return
}

func marshalLine(v any) (line string) {
	data, err := sonnet.Marshal(v)
	if err != nil {
		// Still emit something parseable so the record is not lost
		line = fmt.Sprintf(`{"error":%q}`, err.Error())
		return
	}
	line = string(data)
	return
}

// Human readable line, optionally with ANSI coloured level tags
type ConsoleFormatter struct {
	Color bool
}

const (
	ansiReset  = "\x1b[0m"
	ansiGray   = "\x1b[90m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// Fmt: '10:10:10 [INFO] text'
func (formatter ConsoleFormatter) ToLine(msg Message) (line string) {
	line = msg.Timestamp.Format(time.TimeOnly) + " " + formatter.levelTag(msg.Level) + " " + msg.Text
	return
}

// Fmt: '10:10:10 [INFO] text (Duplicated 4 times)'
func (formatter ConsoleFormatter) ToDupLine(dm *DuplicatedMessages) (line string) {
	msg := dm.Message()
	start, _ := dm.TimeRange()
	line = fmt.Sprintf("%s %s %s (Duplicated %d times)",
		start.Format(time.TimeOnly), formatter.levelTag(msg.Level), msg.Text, dm.Count())
	return
}

func (formatter ConsoleFormatter) levelTag(level Level) (tag string) {
	tag = "[" + level.String() + "]"
	if !formatter.Color {
		return
	}

	var color string
	switch level {
	case LevelDebug:
		color = ansiGray
	case LevelInfo:
		color = ansiCyan
	case LevelWarn:
		color = ansiYellow
	case LevelError:
		color = ansiRed
	default:
		return
	}
	tag = color + tag + ansiReset
	return
}
