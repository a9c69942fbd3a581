package cli

import (
	"duplog/internal/global"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const (
	RootCLICommand  string = "root"
	helpMenuTrailer string = `
Every config value can be overridden with DUPLOG_<KEY> environment variables,
for example DUPLOG_SCOPE=10 or DUPLOG_OUTPUT_FILE_PATH=/var/log/app.log
`
)

// Full standardized help menu (wraps option printer as well)
func PrintHelpMenu(out io.Writer, fs *flag.FlagSet, command string, rootCmd *global.CommandSet) {
	const baseIndentSpaces = 2

	curCmdSet := rootCmd
	isRoot := command == "" || command == RootCLICommand
	if !isRoot {
		cmd, ok := rootCmd.ChildCommands[command]
		if !ok {
			fmt.Fprintf(out, "Unknown command: %s\n", command)
			return
		}
		curCmdSet = cmd
	}

	// Build full usage path
	usageParts := []string{os.Args[0]}
	if isRoot {
		usageParts = append(usageParts, "[command]")
	} else {
		usageParts = append(usageParts, curCmdSet.CommandName)
	}
	usageParts = append(usageParts, "[options]")
	if curCmdSet.UsageOption != "" {
		usageParts = append(usageParts, curCmdSet.UsageOption)
	}

	fmt.Fprintf(out, "Usage: %s\n\n", strings.Join(usageParts, " "))

	// Description
	if isRoot {
		fmt.Fprintln(out, curCmdSet.Description)
		fmt.Fprintln(out, curCmdSet.FullDescription)
		fmt.Fprintln(out)
	} else if curCmdSet.FullDescription != "" {
		fmt.Fprintln(out, "  Description:")
		fmt.Fprintf(out, "    %s\n\n", curCmdSet.FullDescription)
	}

	// Subcommands
	if len(curCmdSet.ChildCommands) > 0 {
		fmt.Fprintf(out, "%sCommands:\n", strings.Repeat(" ", baseIndentSpaces))

		names := make([]string, 0, len(curCmdSet.ChildCommands))
		maxLen := 0
		for name := range curCmdSet.ChildCommands {
			names = append(names, name)
			maxLen = max(maxLen, len(name))
		}
		sort.Strings(names)

		cmdIndent := strings.Repeat(" ", baseIndentSpaces+2)
		for _, name := range names {
			padding := strings.Repeat(" ", maxLen-len(name)+2)
			fmt.Fprintf(out, "%s%s%s - %s\n", cmdIndent, name, padding, curCmdSet.ChildCommands[name].Description)
		}
		fmt.Fprintln(out)
	}

	printFlagOptions(out, fs, baseIndentSpaces)

	if isRoot {
		fmt.Fprint(out, helpMenuTrailer)
	}
}

// One printed option line: short and long names sharing a usage text
type optInfo struct {
	names      []string
	usage      string
	defaultVal string
	hasShort   bool
}

// Custom printer to deduplicate short/long usages and indent automatically.
// Fmt: '  -s, --scope  usage text [default: x]' and '      --metrics  usage text'
func printFlagOptions(out io.Writer, fs *flag.FlagSet, baseIndentSpaces int) {
	const shortLongArgJoiner string = ", "
	const argToUsageSpaces int = 2

	// Long-only options are indented past the "-x, " column
	longOnlyOffset := len(shortLongArgJoiner) + len("-x")

	byUsage := make(map[string]*optInfo)
	var opts []*optInfo
	fs.VisitAll(func(arg *flag.Flag) {
		name := "--" + arg.Name
		isShort := len(arg.Name) == 1
		if isShort {
			name = "-" + arg.Name
		}

		opt, seen := byUsage[arg.Usage]
		if !seen {
			opt = &optInfo{
				usage:      arg.Usage,
				defaultVal: arg.DefValue,
			}
			byUsage[arg.Usage] = opt
			opts = append(opts, opt)
		}
		opt.names = append(opt.names, name)
		opt.hasShort = opt.hasShort || isShort
	})
	if len(opts) == 0 {
		return
	}

	for _, opt := range opts {
		// Short args before long args
		sort.Slice(opt.names, func(a, b int) bool { return len(opt.names[a]) < len(opt.names[b]) })
	}
	sort.Slice(opts, func(a, b int) bool {
		return strings.TrimLeft(opts[a].names[0], "-") < strings.TrimLeft(opts[b].names[0], "-")
	})

	leftWidth := func(opt *optInfo) (width int) {
		width = len(strings.Join(opt.names, shortLongArgJoiner))
		if !opt.hasShort {
			width += longOnlyOffset
		}
		return
	}
	maxLen := 0
	for _, opt := range opts {
		maxLen = max(maxLen, leftWidth(opt))
	}

	fmt.Fprintf(out, "%sOptions:\n", strings.Repeat(" ", baseIndentSpaces))
	for _, opt := range opts {
		indentSpaces := baseIndentSpaces
		if !opt.hasShort {
			indentSpaces += longOnlyOffset
		}
		padding := strings.Repeat(" ", maxLen-leftWidth(opt)+argToUsageSpaces)

		// Skip printing any "empty" defaults
		desc := opt.usage
		if opt.defaultVal != "" && opt.defaultVal != "false" && opt.defaultVal != "0" {
			desc += fmt.Sprintf(" [default: %s]", opt.defaultVal)
		}

		fmt.Fprintf(out, "%s%s%s%s\n", strings.Repeat(" ", indentSpaces), strings.Join(opt.names, shortLongArgJoiner), padding, desc)
	}
}
