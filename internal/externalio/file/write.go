package file

import (
	"duplog/pkg/duplog"
	"fmt"
	"strings"
)

// Writes one formatted message line to the file
func (mod *OutModule) Write(msg duplog.Message) (err error) {
	err = mod.writeLine(mod.formatter.ToLine(msg))
	return
}

// Writes one formatted aggregate line to the file
func (mod *OutModule) WriteDup(dm *duplog.DuplicatedMessages) (err error) {
	err = mod.writeLine(mod.formatter.ToDupLine(dm))
	return
}

func (mod *OutModule) writeLine(line string) (err error) {
	// Always ensure outputs have only one trailing newline
	line = strings.TrimRight(line, "\n") + "\n"

	data := []byte(line)
	for len(data) > 0 {
		var n int
		n, err = mod.sink.Write(data)
		if err != nil {
			err = fmt.Errorf("failed write to '%s': %w", mod.path, err)
			return
		}
		data = data[n:] // remove the bytes that were successfully written
	}
	return
}
