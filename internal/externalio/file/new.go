// Rotating file output for the log pipeline
package file

import (
	"duplog/internal/global"
	"duplog/pkg/duplog"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Creates new rotating file output module. Returns nil nil if no path.
func NewOutput(conf global.FileOutput, formatter duplog.Formatter) (module *OutModule, err error) {
	if conf.Path == "" {
		return
	}
	if formatter == nil {
		formatter = duplog.ConsoleFormatter{}
	}

	// Surface unwritable destinations at startup instead of on the first message
	dir := filepath.Dir(conf.Path)
	info, err := os.Stat(dir)
	if err != nil {
		err = fmt.Errorf("failed to access output file directory: %w", err)
		return
	}
	if !info.IsDir() {
		err = fmt.Errorf("output file parent '%s' is not a directory", dir)
		return
	}

	module = &OutModule{
		sink: &lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			Compress:   conf.Compress,
			LocalTime:  true,
		},
		formatter: formatter,
		path:      conf.Path,
	}
	return
}
