package metrics

import (
	"duplog/pkg/duplog"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func fixedStats() duplog.Stats {
	return duplog.Stats{
		Received:    10,
		Written:     6,
		Duplicates:  4,
		Aggregates:  2,
		WriteErrors: 1,
		QueueDepth:  3,
	}
}

func TestCollector(t *testing.T) {
	collector := NewCollector(fixedStats)

	if count := testutil.CollectAndCount(collector); count != 7 {
		t.Fatalf("expected 7 metrics, got %d", count)
	}

	expected := `
# HELP duplog_messages_received_total Messages taken off the queue by the pipeline
# TYPE duplog_messages_received_total counter
duplog_messages_received_total 10
# HELP duplog_messages_duplicate_total Messages folded into an aggregate instead of written
# TYPE duplog_messages_duplicate_total counter
duplog_messages_duplicate_total 4
# HELP duplog_queue_depth Messages waiting for the pipeline
# TYPE duplog_queue_depth gauge
duplog_queue_depth 3
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"duplog_messages_received_total", "duplog_messages_duplicate_total", "duplog_queue_depth")
	if err != nil {
		t.Fatalf("unexpected metric output: %v", err)
	}
}

func TestCollector_ReadsLiveLogger(t *testing.T) {
	logger, err := duplog.New(duplog.Config{
		DupMsgScope: 3,
		WriterFactory: func() (duplog.Writer, error) {
			return duplog.NewConsoleWriter(io.Discard, nil), nil
		},
	})
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}

	for range 4 {
		logger.Log(duplog.LevelInfo, "same")
	}
	logger.Close()

	collector := NewCollector(logger.Stats)
	expected := `
# HELP duplog_messages_written_total Individual messages accepted by the writer
# TYPE duplog_messages_written_total counter
duplog_messages_written_total 1
# HELP duplog_aggregates_written_total Duplicate aggregates accepted by the writer
# TYPE duplog_aggregates_written_total counter
duplog_aggregates_written_total 1
`
	err = testutil.CollectAndCompare(collector, strings.NewReader(expected),
		"duplog_messages_written_total", "duplog_aggregates_written_total")
	if err != nil {
		t.Fatalf("unexpected metric output: %v", err)
	}
}

func TestSetupListener_ServesMetrics(t *testing.T) {
	server, err := SetupListener("127.0.0.1:0", NewCollector(fixedStats))
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}

	recorder := httptest.NewRecorder()
	server.Handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	if recorder.Code != 200 {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "duplog_write_errors_total 1") {
		t.Fatalf("metric body missing write errors:\n%s", recorder.Body.String())
	}
}
