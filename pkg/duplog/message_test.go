package duplog

import (
	"testing"
	"time"
)

func TestMessageID(t *testing.T) {
	tests := []struct {
		name       string
		a          Message
		b          Message
		expectSame bool
	}{
		{
			name:       "same level and text, different timestamps",
			a:          Message{Timestamp: time.Unix(100, 0), Level: LevelInfo, Text: "hello"},
			b:          Message{Timestamp: time.Unix(999, 5), Level: LevelInfo, Text: "hello"},
			expectSame: true,
		},
		{
			name:       "different level",
			a:          Message{Level: LevelInfo, Text: "hello"},
			b:          Message{Level: LevelWarn, Text: "hello"},
			expectSame: false,
		},
		{
			name:       "different text",
			a:          Message{Level: LevelInfo, Text: "hello"},
			b:          Message{Level: LevelInfo, Text: "hello!"},
			expectSame: false,
		},
		{
			name:       "empty text",
			a:          Message{Level: LevelError, Text: ""},
			b:          Message{Timestamp: time.Now(), Level: LevelError, Text: ""},
			expectSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			same := tt.a.ID() == tt.b.ID()
			if same != tt.expectSame {
				t.Fatalf("id equality: got %v want %v (ids %d, %d)", same, tt.expectSame, tt.a.ID(), tt.b.ID())
			}
		})
	}
}

func TestMessageID_Deterministic(t *testing.T) {
	first := MessageID(LevelWarn, "disk almost full")
	for i := 0; i < 100; i++ {
		if got := MessageID(LevelWarn, "disk almost full"); got != first {
			t.Fatalf("call %d: id changed from %d to %d", i, first, got)
		}
	}

	msg := NewMessage(LevelWarn, "disk almost full")
	if msg.ID() != first {
		t.Fatalf("Message.ID() %d does not match MessageID() %d", msg.ID(), first)
	}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage(LevelDebug, "text")
	if msg.Timestamp.IsZero() {
		t.Fatal("message timestamp is zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Fatalf("message timestamp too old: %v", msg.Timestamp)
	}
	if msg.Level != LevelDebug || msg.Text != "text" {
		t.Fatalf("unexpected message content: %+v", msg)
	}
}

func TestDuplicatedMessages(t *testing.T) {
	base := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	at := func(offset int) Message {
		return Message{Timestamp: base.Add(time.Duration(offset) * time.Second), Level: LevelInfo, Text: "repeat"}
	}

	tests := []struct {
		name        string
		offsets     []int
		expectCount uint64
		expectStart int
		expectEnd   int
		expectLast  int
	}{
		{"single occurrence", []int{5}, 1, 5, 5, 5},
		{"chronological", []int{1, 2, 3}, 3, 1, 3, 3},
		{"out of order", []int{5, 1, 9, 3}, 4, 1, 9, 3},
		{"equal timestamps", []int{4, 4, 4}, 3, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDuplicatedMessages(at(tt.offsets[0]))
			for _, offset := range tt.offsets[1:] {
				dm.Add(at(offset))
			}

			if dm.Count() != tt.expectCount {
				t.Errorf("count: got %d want %d", dm.Count(), tt.expectCount)
			}

			start, end := dm.TimeRange()
			if !start.Equal(at(tt.expectStart).Timestamp) {
				t.Errorf("start: got %v want %v", start, at(tt.expectStart).Timestamp)
			}
			if !end.Equal(at(tt.expectEnd).Timestamp) {
				t.Errorf("end: got %v want %v", end, at(tt.expectEnd).Timestamp)
			}
			if start.After(end) {
				t.Errorf("start %v after end %v", start, end)
			}
			if !dm.Message().Timestamp.Equal(at(tt.expectLast).Timestamp) {
				t.Errorf("latest message: got %v want %v", dm.Message().Timestamp, at(tt.expectLast).Timestamp)
			}
		})
	}
}
