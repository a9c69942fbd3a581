package duplog

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Bytes of BLAKE2b digest kept as the message id
const idSize = 8

// Rough per message memory cost beyond the text itself, used for backlog accounting
const messageOverhead = 48

// One log record. Immutable after creation, passed by value.
type Message struct {
	Timestamp time.Time
	Level     Level
	Text      string
}

// Creates a message stamped with the current time
func NewMessage(level Level, text string) (msg Message) {
	msg = Message{
		Timestamp: time.Now(),
		Level:     level,
		Text:      text,
	}
	return
}

// Dedup key over level and text only. Timestamp never contributes.
func MessageID(level Level, text string) (id uint64) {
	hasher, _ := blake2b.New(idSize, nil) // only fails for sizes outside 1..64
	hasher.Write([]byte{byte(level)})
	hasher.Write([]byte(text))
	id = binary.BigEndian.Uint64(hasher.Sum(nil))
	return
}

// Dedup key of this message
func (msg Message) ID() (id uint64) {
	id = MessageID(msg.Level, msg.Text)
	return
}

func (msg Message) size() (n int) {
	n = len(msg.Text) + messageOverhead
	return
}

// Accumulates repeated occurrences of one message id
type DuplicatedMessages struct {
	count  uint64
	latest Message
	start  time.Time
	end    time.Time
}

// Starts an aggregate from its first occurrence
func NewDuplicatedMessages(msg Message) (dm *DuplicatedMessages) {
	dm = &DuplicatedMessages{
		count:  1,
		latest: msg,
		start:  msg.Timestamp,
		end:    msg.Timestamp,
	}
	return
}

// Folds another occurrence in. Arrival order is not assumed to be chronological.
func (dm *DuplicatedMessages) Add(msg Message) {
	dm.count++
	dm.latest = msg
	if msg.Timestamp.After(dm.end) {
		dm.end = msg.Timestamp
	}
	if msg.Timestamp.Before(dm.start) {
		dm.start = msg.Timestamp
	}
}

// Number of occurrences folded in
func (dm *DuplicatedMessages) Count() (count uint64) {
	count = dm.count
	return
}

// Most recent occurrence
func (dm *DuplicatedMessages) Message() (msg Message) {
	msg = dm.latest
	return
}

// Earliest and latest timestamps observed
func (dm *DuplicatedMessages) TimeRange() (start time.Time, end time.Time) {
	start = dm.start
	end = dm.end
	return
}
