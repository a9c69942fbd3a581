package main

import (
	"duplog/internal/cli"
	"duplog/internal/global"
	"flag"
	"fmt"
	"os"
	"runtime"
)

func main() {
	global.CmdOpts = cli.DefineOptions()

	args := os.Args
	commandFlags := flag.NewFlagSet(args[0], flag.ExitOnError)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(os.Stdout, commandFlags, cli.RootCLICommand, global.CmdOpts)
	}
	if len(args) < 2 {
		cli.PrintHelpMenu(os.Stdout, commandFlags, cli.RootCLICommand, global.CmdOpts)
		os.Exit(1)
	}
	commandFlags.Parse(args[1:2])

	// Retrieve command and args
	command := args[1]
	args = args[2:]

	// Program diagnostics go through its own logger on stderr
	progLog, err := cli.NewProgramLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Process commands
	switch command {
	case "pipe":
		cli.PipeMode(progLog, command, args)
	case "demo":
		cli.DemoMode(progLog, command, args)
	case "version":
		if len(args) > 0 && (args[0] == "--verbose" || args[0] == "-v") {
			fmt.Printf("duplog %s\n", global.ProgVersion)
			fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		} else {
			fmt.Println(global.ProgVersion)
		}
	default:
		cli.PrintHelpMenu(os.Stdout, commandFlags, cli.RootCLICommand, global.CmdOpts)
		progLog.Close()
		os.Exit(1)
	}

	// Finish up any stderr writes for program logger
	progLog.Close()
}
