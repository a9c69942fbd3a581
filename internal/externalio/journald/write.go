package journald

import (
	"duplog/internal/global"
	"duplog/pkg/duplog"
	"fmt"
	"strconv"
	"time"
)

// Uploads one log message to the journal
func (mod *OutModule) Write(msg duplog.Message) (err error) {
	fields := mod.baseFields(msg, msg.Timestamp)

	err = sendJournalExport(mod.sink, mod.url, encodeEntry(fields))
	if err != nil {
		err = fmt.Errorf("%w (message id '%d')", err, msg.ID())
		return
	}
	return
}

// Uploads one aggregate entry. The entry is stamped at the first occurrence.
func (mod *OutModule) WriteDup(dm *duplog.DuplicatedMessages) (err error) {
	msg := dm.Message()
	start, end := dm.TimeRange()

	fields := mod.baseFields(msg, start)
	fields = append(fields,
		field{key: "DUPLOG_DUP_COUNT", val: strconv.FormatUint(dm.Count(), 10)},
		field{key: "DUPLOG_DUP_START", val: start.Format(time.RFC3339Nano)},
		field{key: "DUPLOG_DUP_END", val: end.Format(time.RFC3339Nano)},
	)

	err = sendJournalExport(mod.sink, mod.url, encodeEntry(fields))
	if err != nil {
		err = fmt.Errorf("%w (aggregate of message id '%d')", err, msg.ID())
		return
	}
	return
}

func (mod *OutModule) baseFields(msg duplog.Message, stamp time.Time) (fields []field) {
	fields = []field{
		{key: "__REALTIME_TIMESTAMP", val: strconv.FormatInt(stamp.UnixMicro(), 10)}, // Required field
		{key: "_BOOT_ID", val: mod.bootID},                                           // Required field
		{key: "PRIORITY", val: priority(msg.Level)},
		{key: "SYSLOG_IDENTIFIER", val: global.ProgBaseName},
		{key: "MESSAGE", val: msg.Text}, // Required field
		{key: "DUPLOG_LEVEL", val: msg.Level.String()},
		{key: "DUPLOG_MSG_ID", val: strconv.FormatUint(msg.ID(), 10)},
	}
	return
}
