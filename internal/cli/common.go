package cli

import (
	"duplog/internal/global"
	"flag"
)

// Command line overrides for the loaded config
type pipelineArgs struct {
	configPath string
	scope      int
	level      string
	metrics    bool
}

func SetCommon(fs *flag.FlagSet, configPath *string) {
	fs.StringVar(configPath, "c", "", "Path to the configuration file (uses "+global.DefaultConfigPath+" when present)")
	fs.StringVar(configPath, "config", "", "Path to the configuration file (uses "+global.DefaultConfigPath+" when present)")
}

func setPipelineArguments(fs *flag.FlagSet, args *pipelineArgs) {
	SetCommon(fs, &args.configPath)
	fs.IntVar(&args.scope, "s", 0, "Number of recent distinct messages checked for duplicates (overrides config)")
	fs.IntVar(&args.scope, "scope", 0, "Number of recent distinct messages checked for duplicates (overrides config)")
	fs.StringVar(&args.level, "l", "", "Level for logged lines <debug|info|warn|error> (overrides config)")
	fs.StringVar(&args.level, "level", "", "Level for logged lines <debug|info|warn|error> (overrides config)")
	fs.BoolVar(&args.metrics, "metrics", false, "Serve pipeline metrics on "+global.DefaultMetricAddr+" (or configured address)")
}
