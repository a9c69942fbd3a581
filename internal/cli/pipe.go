package cli

import (
	"bufio"
	"context"
	"duplog/internal/global"
	"duplog/internal/lifecycle"
	"duplog/pkg/duplog"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Longest accepted input line
const maxLineBytes = 1024 * 1024

func PipeMode(progLog *duplog.Logger, commandname string, args []string) {
	var opts pipelineArgs
	commandFlags := flag.NewFlagSet(commandname, flag.ExitOnError)
	setPipelineArguments(commandFlags, &opts)

	commandFlags.Usage = func() {
		PrintHelpMenu(os.Stdout, commandFlags, commandname, global.CmdOpts)
	}
	commandFlags.Parse(args)

	pipe, err := startPipeline(progLog, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := lifecycle.SignalContext(context.Background())
	defer stop()

	err = lifecycle.NotifyReady()
	if err != nil {
		progLog.Logf(duplog.LevelWarn, "Systemd notify failed: %v", err)
	}

	lines, err := runPipe(ctx, pipe.logger, os.Stdin, pipe.level)
	if ctx.Err() != nil {
		progLog.Log(duplog.LevelInfo, "Received stop signal, draining pipeline")
	}
	if err != nil {
		progLog.Logf(duplog.LevelError, "Input stopped: %v", err)
	}

	lifecycle.NotifyStopping()
	err = pipe.stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	progLog.Logf(duplog.LevelDebug, "Logged %d lines", lines)
}

// Logs every input line until EOF, read failure, context cancel or logger shutdown
func runPipe(ctx context.Context, logger *duplog.Logger, input io.Reader, level duplog.Level) (lines int, err error) {
	var logged atomic.Int64
	done := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(input)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			if ctx.Err() != nil {
				break
			}
			// Counted before queueing so a written line is always included
			logged.Add(1)
			logErr := logger.Log(level, scanner.Text())
			if errors.Is(logErr, duplog.ErrClosed) {
				logged.Add(-1)
				break
			}
		}
		readErr := scanner.Err()
		if readErr != nil {
			readErr = fmt.Errorf("failed reading input: %w", readErr)
		}
		done <- readErr
	}()

	// Blocked stdin reads are abandoned on cancel
	select {
	case err = <-done:
	case <-ctx.Done():
	}
	lines = int(logged.Load())
	return
}
