package cli

import (
	"duplog/internal/global"
	"duplog/pkg/duplog"
	"flag"
	"fmt"
	"os"
)

func DemoMode(progLog *duplog.Logger, commandname string, args []string) {
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

	err = runDemo(pipe.logger)
	if err != nil {
		progLog.Logf(duplog.LevelError, "Demo interrupted: %v", err)
	}

	err = pipe.stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Logs the demonstration sequence: a greeting, repeated and distinct info lines, an error, repeated warnings
func runDemo(logger *duplog.Logger) (err error) {
	log := func(level duplog.Level, text string) {
		if err == nil {
			err = logger.Log(level, text)
		}
	}

	log(duplog.LevelDebug, "Hello")
	for range 9 {
		log(duplog.LevelInfo, "World")
	}
	for i := 1; i <= 9; i++ {
		log(duplog.LevelInfo, fmt.Sprintf("Message%d", i))
	}
	log(duplog.LevelError, "Rust")
	for range 10 {
		log(duplog.LevelWarn, "World")
	}
	return
}
