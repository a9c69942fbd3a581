package output

import (
	"bytes"
	"duplog/internal/externalio/file"
	"duplog/internal/global"
	"duplog/pkg/duplog"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Redirects stdout writes into a buffer for the test duration
func captureStdout(t *testing.T, terminal bool) (buf *bytes.Buffer) {
	t.Helper()

	buf = &bytes.Buffer{}
	originalOut, originalTerm := stdout, isTerminal
	stdout = buf
	isTerminal = func(io.Writer) bool { return terminal }
	t.Cleanup(func() {
		stdout, isTerminal = originalOut, originalTerm
	})
	return
}

func TestNewFactory_DefaultsToStdoutConsole(t *testing.T) {
	buf := captureStdout(t, false)

	writer, err := NewFactory(global.Outputs{})()
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	if _, ok := writer.(*duplog.ConsoleWriter); !ok {
		t.Fatalf("expected console writer, got %T", writer)
	}

	ts := time.Date(2026, 1, 31, 7, 0, 0, 0, time.UTC)
	err = writer.Write(duplog.Message{Timestamp: ts, Level: duplog.LevelInfo, Text: "plain"})
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	if buf.String() != "07:00:00 [INFO] plain\n" {
		t.Fatalf("unexpected stdout: %q", buf.String())
	}
}

func TestNewFactory_StdoutColor(t *testing.T) {
	tests := []struct {
		name      string
		color     string
		terminal  bool
		wantColor bool
	}{
		{"auto on terminal", global.ColorAuto, true, true},
		{"auto on pipe", "", false, false},
		{"always", global.ColorAlways, false, true},
		{"never", global.ColorNever, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t, tt.terminal)

			conf := global.Outputs{Stdout: global.StdoutOutput{Enabled: true, Color: tt.color}}
			writer, err := NewFactory(conf)()
			if err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}
			writer.Write(duplog.NewMessage(duplog.LevelError, "boom"))

			gotColor := strings.Contains(buf.String(), "\x1b[")
			if gotColor != tt.wantColor {
				t.Fatalf("expected color=%v, got output %q", tt.wantColor, buf.String())
			}
		})
	}
}

func TestNewFactory_StdoutJSON(t *testing.T) {
	buf := captureStdout(t, true)

	conf := global.Outputs{Stdout: global.StdoutOutput{Enabled: true, Format: global.FormatJSON}}
	writer, err := NewFactory(conf)()
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	writer.Write(duplog.NewMessage(duplog.LevelInfo, "structured"))

	if !strings.HasPrefix(buf.String(), `{"ts":`) || !strings.Contains(buf.String(), `"msg":"structured"`) {
		t.Fatalf("expected json line, got %q", buf.String())
	}
}

func TestNewFactory_SingleFileReturnedDirectly(t *testing.T) {
	captureStdout(t, false)
	path := filepath.Join(t.TempDir(), "out.log")

	writer, err := NewFactory(global.Outputs{File: global.FileOutput{Path: path}})()
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	module, ok := writer.(*file.OutModule)
	if !ok {
		t.Fatalf("expected file module, got %T", writer)
	}
	defer module.Close()
}

func TestNewFactory_StdoutAndFileTee(t *testing.T) {
	buf := captureStdout(t, false)
	path := filepath.Join(t.TempDir(), "out.log")

	conf := global.Outputs{
		Stdout: global.StdoutOutput{Enabled: true},
		File:   global.FileOutput{Path: path, Format: global.FormatJSON},
	}
	writer, err := NewFactory(conf)()
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	tee, ok := writer.(*duplog.TeeWriter)
	if !ok {
		t.Fatalf("expected tee writer, got %T", writer)
	}

	err = tee.Write(duplog.NewMessage(duplog.LevelWarn, "both"))
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	if err = tee.Close(); err != nil {
		t.Fatalf("expected no error on close, but got '%v'", err)
	}

	if !strings.Contains(buf.String(), "[WARN] both") {
		t.Errorf("stdout missing line: %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"both"`) {
		t.Errorf("file missing json line: %q", data)
	}
}

func TestNewFactory_Errors(t *testing.T) {
	captureStdout(t, false)

	tests := []struct {
		name string
		conf global.Outputs
	}{
		{"bad stdout format", global.Outputs{Stdout: global.StdoutOutput{Enabled: true, Format: "xml"}}},
		{"bad color", global.Outputs{Stdout: global.StdoutOutput{Enabled: true, Color: "sometimes"}}},
		{"bad file format", global.Outputs{File: global.FileOutput{Path: "/tmp/x.log", Format: "xml"}}},
		{"missing file dir", global.Outputs{File: global.FileOutput{Path: filepath.Join(t.TempDir(), "no", "x.log")}}},
		{"bad beats timeout", global.Outputs{Beats: global.BeatsOutput{Address: "127.0.0.1:1", Timeout: "later"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := NewFactory(tt.conf)()
			if err == nil {
				t.Fatalf("expected error, got writer %T", writer)
			}
		})
	}
}
