package cli

import (
	"duplog/internal/config"
	"duplog/internal/global"
	"duplog/internal/metrics"
	"duplog/internal/output"
	"duplog/pkg/duplog"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/term"
)

// Log pipeline built from config plus its optional metric server
type pipeline struct {
	logger *duplog.Logger
	level  duplog.Level
	server *http.Server
}

// Creates the program's own stderr logger
func NewProgramLogger() (progLog *duplog.Logger, err error) {
	color := term.IsTerminal(int(os.Stderr.Fd()))
	progLog, err = duplog.New(duplog.Config{
		DupMsgScope: global.DefaultScope,
		WriterFactory: func() (duplog.Writer, error) {
			return duplog.NewConsoleWriter(os.Stderr, duplog.ConsoleFormatter{Color: color}), nil
		},
	})
	return
}

// Loads config, applies command line overrides, and starts the pipeline
func startPipeline(progLog *duplog.Logger, args pipelineArgs) (pipe *pipeline, err error) {
	cfg, err := config.Load(args.configPath)
	if err != nil {
		return
	}

	if args.scope != 0 {
		cfg.DupMsgScope = args.scope
	}
	if args.level != "" {
		cfg.Level = args.level
	}
	if args.metrics {
		cfg.Metrics.Enabled = true
	}
	err = config.Validate(cfg)
	if err != nil {
		return
	}

	level, err := duplog.ParseLevel(cfg.Level)
	if err != nil {
		return
	}

	logger, err := duplog.New(duplog.Config{
		DupMsgScope:   cfg.DupMsgScope,
		WriterFactory: output.NewFactory(cfg.Outputs),
		ErrorHandler:  reportTo(progLog),
	})
	if err != nil {
		return
	}

	pipe = &pipeline{
		logger: logger,
		level:  level,
	}

	if cfg.Metrics.Enabled {
		pipe.server, err = metrics.SetupListener(cfg.Metrics.ListenAddr, metrics.NewCollector(logger.Stats))
		if err != nil {
			logger.Close()
			pipe = nil
			return
		}
		go metrics.Start(pipe.server)
		progLog.Logf(duplog.LevelInfo, "Metric server listening on http://%s/metrics", cfg.Metrics.ListenAddr)
	}

	progLog.Logf(duplog.LevelDebug, "Pipeline started (scope %d, level %s)", cfg.DupMsgScope, level)
	return
}

// Drains pending aggregates and stops the metric server
func (pipe *pipeline) stop() (err error) {
	err = pipe.logger.Shutdown()
	if errors.Is(err, duplog.ErrClosed) {
		err = nil
	}

	timer := time.NewTimer(global.ShutdownTimeout)
	defer timer.Stop()

	select {
	case <-pipe.logger.Done():
	case <-timer.C:
		err = fmt.Errorf("pipeline did not drain within %s", global.ShutdownTimeout)
	}

	if pipe.server != nil {
		pipe.server.Close()
	}
	return
}

// Routes pipeline errors through the program logger, falling back to stderr once it is closed
func reportTo(progLog *duplog.Logger) (handler func(error)) {
	handler = func(err error) {
		if logErr := progLog.Log(duplog.LevelError, err.Error()); logErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return
}
