package cli

import "duplog/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Duplicate Collapsing Logger (duplog)",
		FullDescription: "  Writes log lines asynchronously, folding recently repeated messages into counted aggregates",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Stdin
	root.ChildCommands["pipe"] = &global.CommandSet{
		CommandName:     "pipe",
		Description:     "Log Lines From Stdin",
		FullDescription: "Reads lines from standard input and logs each one to configured outputs until EOF or interrupt",
		ChildCommands:   nil,
	}

	// Demo
	root.ChildCommands["demo"] = &global.CommandSet{
		CommandName:     "demo",
		Description:     "Run Demonstration Sequence",
		FullDescription: "Logs a fixed sequence with repeated messages to show duplicate aggregation on configured outputs",
		ChildCommands:   nil,
	}

	// Version Info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Show Version Information",
		FullDescription: "Display meta information about program",
	}

	cmdOpts = root
	return
}
