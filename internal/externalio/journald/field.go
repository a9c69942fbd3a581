package journald

import (
	"bytes"
	"duplog/pkg/duplog"
	"encoding/binary"
	"strings"
)

// Fields journal-remote rejects an entry without, written even when empty
var requiredFields = map[string]bool{
	"__REALTIME_TIMESTAMP": true,
	"_BOOT_ID":             true,
	"MESSAGE":              true,
}

// Encodes one journal export entry terminated by a double newline.
// Empty optional fields are skipped. Values containing newlines use the binary field form.
// https://systemd.io/JOURNAL_EXPORT_FORMATS/#journal-export-format
func encodeEntry(fields []field) (payload []byte) {
	var buf bytes.Buffer
	for _, field := range fields {
		if field.key == "" || (field.val == "" && !requiredFields[field.key]) {
			continue
		}

		if !strings.Contains(field.val, "\n") {
			// Key=val\n Format
			buf.WriteString(field.key)
			buf.WriteByte('=')
			buf.WriteString(field.val)
			buf.WriteByte('\n')
			continue
		}

		// Key\n, 64 bit little-endian length, data, \n
		buf.WriteString(field.key)
		buf.WriteByte('\n')
		var size [8]byte
		binary.LittleEndian.PutUint64(size[:], uint64(len(field.val)))
		buf.Write(size[:])
		buf.WriteString(field.val)
		buf.WriteByte('\n')
	}
	// Terminate with double newline
	buf.WriteByte('\n')

	payload = buf.Bytes()
	return
}

// Maps log level to syslog priority
func priority(level duplog.Level) (code string) {
	switch level {
	case duplog.LevelDebug:
		code = "7"
	case duplog.LevelInfo:
		code = "6"
	case duplog.LevelWarn:
		code = "4"
	default:
		code = "3"
	}
	return
}
