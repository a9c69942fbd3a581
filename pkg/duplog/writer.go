package duplog

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Destination for rendered output. Called only from the pipeline goroutine.
// A blocking call stalls the whole pipeline.
type Writer interface {
	Write(msg Message) (err error)
	WriteDup(dm *DuplicatedMessages) (err error)
}

// Builds the pipeline's writer. Invoked once, on the pipeline goroutine.
type WriterFactory func() (writer Writer, err error)

// Writes formatted lines to a single io.Writer
type ConsoleWriter struct {
	formatter Formatter
	out       io.Writer
}

// Creates console writer. Nil output defaults to stdout, nil formatter to plain console lines.
func NewConsoleWriter(out io.Writer, formatter Formatter) (writer *ConsoleWriter) {
	if out == nil {
		out = os.Stdout
	}
	if formatter == nil {
		formatter = ConsoleFormatter{}
	}
	writer = &ConsoleWriter{
		formatter: formatter,
		out:       out,
	}
	return
}

func (writer *ConsoleWriter) Write(msg Message) (err error) {
	_, err = io.WriteString(writer.out, writer.formatter.ToLine(msg)+"\n")
	return
}

func (writer *ConsoleWriter) WriteDup(dm *DuplicatedMessages) (err error) {
	_, err = io.WriteString(writer.out, writer.formatter.ToDupLine(dm)+"\n")
	return
}

// Fans every call out to an ordered list of child writers
type TeeWriter struct {
	writers []Writer
}

// Creates fan-out writer over children in the given order
func NewTeeWriter(writers ...Writer) (tee *TeeWriter) {
	tee = &TeeWriter{
		writers: append([]Writer(nil), writers...),
	}
	return
}

// Forwards to every child, even after one fails. Returns all child failures joined.
func (tee *TeeWriter) Write(msg Message) (err error) {
	var errs []error
	for index, writer := range tee.writers {
		childErr := writer.Write(msg)
		if childErr != nil {
			errs = append(errs, fmt.Errorf("writer %d: %w", index, childErr))
		}
	}
	err = errors.Join(errs...)
	return
}

// Forwards to every child, even after one fails. Returns all child failures joined.
func (tee *TeeWriter) WriteDup(dm *DuplicatedMessages) (err error) {
	var errs []error
	for index, writer := range tee.writers {
		childErr := writer.WriteDup(dm)
		if childErr != nil {
			errs = append(errs, fmt.Errorf("writer %d: %w", index, childErr))
		}
	}
	err = errors.Join(errs...)
	return
}

// Closes every child that holds resources
func (tee *TeeWriter) Close() (err error) {
	var errs []error
	for index, writer := range tee.writers {
		closer, ok := writer.(io.Closer)
		if !ok {
			continue
		}
		closeErr := closer.Close()
		if closeErr != nil {
			errs = append(errs, fmt.Errorf("writer %d: %w", index, closeErr))
		}
	}
	err = errors.Join(errs...)
	return
}
