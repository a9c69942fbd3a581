// Builds the pipeline writer from configured output destinations (stdout, file, beats, journald)
package output

import (
	"duplog/internal/externalio/beats"
	"duplog/internal/externalio/file"
	"duplog/internal/externalio/journald"
	"duplog/internal/global"
	"duplog/pkg/duplog"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	stdout     io.Writer = os.Stdout
	isTerminal           = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
)

// Returns factory creating writers in fixed order: stdout, file, beats, journald.
// A single output is returned as is, several are fanned out. No output means stdout console.
func NewFactory(conf global.Outputs) (factory duplog.WriterFactory) {
	factory = func() (writer duplog.Writer, err error) {
		var writers []duplog.Writer
		defer func() {
			if err != nil {
				closeAll(writers)
			}
		}()

		if conf.Stdout.Enabled {
			var out duplog.Writer
			out, err = newStdout(conf.Stdout)
			if err != nil {
				return
			}
			writers = append(writers, out)
		}

		fileFormatter, err := NewFormatter(conf.File.Format, false)
		if err != nil {
			err = fmt.Errorf("file output: %w", err)
			return
		}
		fileMod, err := file.NewOutput(conf.File, fileFormatter)
		if err != nil {
			err = fmt.Errorf("file output: %w", err)
			return
		}
		if fileMod != nil {
			writers = append(writers, fileMod)
		}

		beatsMod, err := beats.NewOutput(conf.Beats)
		if err != nil {
			err = fmt.Errorf("beats output: %w", err)
			return
		}
		if beatsMod != nil {
			writers = append(writers, beatsMod)
		}

		jrnlMod, err := journald.NewOutput(conf.Journald.URL)
		if err != nil {
			err = fmt.Errorf("journald output: %w", err)
			return
		}
		if jrnlMod != nil {
			writers = append(writers, jrnlMod)
		}

		switch len(writers) {
		case 0:
			writer, err = newStdout(global.StdoutOutput{Format: global.FormatConsole, Color: global.ColorAuto})
		case 1:
			writer = writers[0]
		default:
			writer = duplog.NewTeeWriter(writers...)
		}
		return
	}
	return
}

// Returns formatter for the named output format
func NewFormatter(format string, color bool) (formatter duplog.Formatter, err error) {
	switch format {
	case "", global.FormatConsole:
		formatter = duplog.ConsoleFormatter{Color: color}
	case global.FormatJSON:
		formatter = duplog.JSONFormatter{}
	default:
		err = fmt.Errorf("unknown output format '%s'", format)
	}
	return
}

func newStdout(conf global.StdoutOutput) (writer duplog.Writer, err error) {
	var color bool
	switch conf.Color {
	case "", global.ColorAuto:
		color = isTerminal(stdout)
	case global.ColorAlways:
		color = true
	case global.ColorNever:
	default:
		err = fmt.Errorf("stdout output: unknown color mode '%s'", conf.Color)
		return
	}

	formatter, err := NewFormatter(conf.Format, color)
	if err != nil {
		err = fmt.Errorf("stdout output: %w", err)
		return
	}
	writer = duplog.NewConsoleWriter(stdout, formatter)
	return
}

// Closes already opened outputs after a later one failed
func closeAll(writers []duplog.Writer) {
	var errs []error
	for _, writer := range writers {
		if closer, ok := writer.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to close outputs: %v\n", err)
	}
}
