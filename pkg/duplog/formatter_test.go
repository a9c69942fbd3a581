package duplog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestJSONFormatter_ToLine(t *testing.T) {
	ts := time.Date(2026, 1, 31, 12, 34, 56, 123456789, time.FixedZone("UTC+2", 2*3600))
	msg := Message{Timestamp: ts, Level: LevelWarn, Text: `quote " and newline` + "\n"}

	line := JSONFormatter{}.ToLine(msg)
	if strings.Contains(line, "\n") {
		t.Fatalf("json line contains raw newline: %q", line)
	}

	var decoded map[string]any
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		t.Fatalf("line is not valid JSON: %v (%q)", err, line)
	}

	if len(decoded) != 4 {
		t.Fatalf("expected 4 keys, got %v", decoded)
	}
	if decoded["ts"] != "2026-01-31T12:34:56.123456789+02:00" {
		t.Errorf("ts mismatch: %v", decoded["ts"])
	}
	if decoded["level"] != "WARN" {
		t.Errorf("level mismatch: %v", decoded["level"])
	}
	if decoded["msg"] != msg.Text {
		t.Errorf("msg mismatch: %v", decoded["msg"])
	}
	if id, _ := decoded["msg_id"].(json.Number); id.String() != itoa(msg.ID()) {
		t.Errorf("msg_id mismatch: got %v want %d", decoded["msg_id"], msg.ID())
	}

	if !strings.HasPrefix(line, `{"ts":`) {
		t.Errorf("expected ts as first key: %s", line)
	}
}

func TestJSONFormatter_ToDupLine(t *testing.T) {
	start := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	dm := NewDuplicatedMessages(Message{Timestamp: start, Level: LevelError, Text: "oops"})
	dm.Add(Message{Timestamp: start.Add(90 * time.Second), Level: LevelError, Text: "oops"})
	dm.Add(Message{Timestamp: start.Add(30 * time.Second), Level: LevelError, Text: "oops"})

	line := JSONFormatter{}.ToDupLine(dm)

	var decoded struct {
		Start string `json:"ts"`
		End   string `json:"te"`
		Level string `json:"level"`
		Msg   string `json:"msg"`
		ID    uint64 `json:"msg_id"`
		Count uint64 `json:"msg_dup"`
	}
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("line is not valid JSON: %v (%q)", err, line)
	}

	if decoded.Start != "2026-01-31T12:00:00Z" || decoded.End != "2026-01-31T12:01:30Z" {
		t.Errorf("time range mismatch: %s .. %s", decoded.Start, decoded.End)
	}
	if decoded.Level != "ERROR" || decoded.Msg != "oops" {
		t.Errorf("content mismatch: %+v", decoded)
	}
	if decoded.ID != MessageID(LevelError, "oops") {
		t.Errorf("msg_id mismatch: got %d", decoded.ID)
	}
	if decoded.Count != 3 {
		t.Errorf("msg_dup mismatch: got %d", decoded.Count)
	}
}

func TestConsoleFormatter(t *testing.T) {
	ts := time.Date(2026, 1, 31, 9, 5, 7, 0, time.UTC)
	msg := Message{Timestamp: ts, Level: LevelInfo, Text: "hello world"}
	dm := NewDuplicatedMessages(msg)
	dm.Add(Message{Timestamp: ts.Add(time.Minute), Level: LevelInfo, Text: "hello world"})

	tests := []struct {
		name      string
		formatter ConsoleFormatter
		line      string
		dupLine   string
	}{
		{
			name:      "plain",
			formatter: ConsoleFormatter{},
			line:      "09:05:07 [INFO] hello world",
			dupLine:   "09:05:07 [INFO] hello world (Duplicated 2 times)",
		},
		{
			name:      "color",
			formatter: ConsoleFormatter{Color: true},
			line:      "09:05:07 " + ansiCyan + "[INFO]" + ansiReset + " hello world",
			dupLine:   "09:05:07 " + ansiCyan + "[INFO]" + ansiReset + " hello world (Duplicated 2 times)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.ToLine(msg); got != tt.line {
				t.Errorf("\ngot  %q\nwant %q", got, tt.line)
			}
			if got := tt.formatter.ToDupLine(dm); got != tt.dupLine {
				t.Errorf("\ngot  %q\nwant %q", got, tt.dupLine)
			}
		})
	}
}
