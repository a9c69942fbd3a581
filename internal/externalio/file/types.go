package file

import (
	"duplog/pkg/duplog"
	"io"
)

type OutModule struct {
	sink      io.WriteCloser
	formatter duplog.Formatter
	path      string
}
