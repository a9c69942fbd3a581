package beats

import (
	"duplog/internal/global"
	"duplog/pkg/duplog"
	"fmt"
	"os"
)

// Sends one log event to the configured beats server
func (mod *OutModule) Write(msg duplog.Message) (err error) {
	event := newEvent(msg)
	err = mod.send(event)
	if err != nil {
		err = fmt.Errorf("%w (message id '%d')", err, msg.ID())
	}
	return
}

// Sends one aggregate event, carrying the duplicate count and time range
func (mod *OutModule) WriteDup(dm *duplog.DuplicatedMessages) (err error) {
	msg := dm.Message()
	start, end := dm.TimeRange()

	event := newEvent(msg)
	event["@timestamp"] = start
	event["duplicate"] = map[string]interface{}{
		"count": dm.Count(),
		"start": start,
		"end":   end,
	}

	err = mod.send(event)
	if err != nil {
		err = fmt.Errorf("%w (aggregate of message id '%d')", err, msg.ID())
	}
	return
}

func newEvent(msg duplog.Message) (fields map[string]interface{}) {
	fields = map[string]interface{}{
		// Minimum required fields
		"@timestamp": msg.Timestamp,
		"message":    msg.Text,

		"log": map[string]interface{}{
			"level": msg.Level.String(),
			"id":    msg.ID(), // Custom
		},
		"agent": map[string]interface{}{
			// Meta fields identifying the writing program itself
			"program": global.ProgBaseName,
			"version": global.ProgVersion,
			"pid":     os.Getpid(),
		},
	}
	return
}

func (mod *OutModule) send(event map[string]interface{}) (err error) {
	events := []interface{}{event}

	sent, err := mod.sink.Send(events)
	if err != nil {
		err = fmt.Errorf("failed send to beats server '%s': %w", mod.endpoint, err)
		return
	}
	if sent != len(events) {
		err = fmt.Errorf("beats server '%s' acknowledged %d of %d events", mod.endpoint, sent, len(events))
		return
	}
	return
}
