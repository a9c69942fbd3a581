package duplog

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// One observed writer call
type call struct {
	dup   bool
	level Level
	text  string
	ts    time.Time // message timestamp, or aggregate start
	end   time.Time
	count uint64
}

// Writer that records every call for later inspection
type recordingWriter struct {
	mutex     sync.Mutex
	calls     []call
	failTexts map[string]error // Write/WriteDup of these texts fails
	panicText string
	closed    int
}

func (w *recordingWriter) Write(msg Message) (err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if msg.Text == w.panicText && w.panicText != "" {
		panic("writer exploded")
	}
	if fail, ok := w.failTexts[msg.Text]; ok {
		err = fail
		return
	}
	w.calls = append(w.calls, call{level: msg.Level, text: msg.Text, ts: msg.Timestamp, count: 1})
	return
}

func (w *recordingWriter) WriteDup(dm *DuplicatedMessages) (err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	msg := dm.Message()
	if fail, ok := w.failTexts[msg.Text]; ok {
		err = fail
		return
	}
	start, end := dm.TimeRange()
	w.calls = append(w.calls, call{dup: true, level: msg.Level, text: msg.Text, ts: start, end: end, count: dm.Count()})
	return
}

func (w *recordingWriter) Close() (err error) {
	w.mutex.Lock()
	w.closed++
	w.mutex.Unlock()
	return
}

func (w *recordingWriter) snapshot() (calls []call) {
	w.mutex.Lock()
	calls = append([]call(nil), w.calls...)
	w.mutex.Unlock()
	return
}

// Collects reported errors from any goroutine
type errorSink struct {
	mutex sync.Mutex
	errs  []error
}

func (s *errorSink) handle(err error) {
	s.mutex.Lock()
	s.errs = append(s.errs, err)
	s.mutex.Unlock()
}

func (s *errorSink) count(target error) (n int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, err := range s.errs {
		if target == nil || errors.Is(err, target) {
			n++
		}
	}
	return
}

// Starts a logger over a recording writer
func newTestLogger(t *testing.T, scope int) (logger *Logger, writer *recordingWriter, sink *errorSink) {
	t.Helper()
	writer = &recordingWriter{}
	sink = &errorSink{}

	logger, err := New(Config{
		DupMsgScope:   scope,
		WriterFactory: func() (Writer, error) { return writer, nil },
		ErrorHandler:  sink.handle,
	})
	if err != nil {
		t.Fatalf("expected no error creating logger, but got '%v'", err)
	}
	return
}

// Sum of individual writes and aggregate counts
func totalOccurrences(calls []call) (total uint64) {
	for _, c := range calls {
		total += c.count
	}
	return
}
