package global

type CommandSet struct {
	CommandName     string                 // Exact name of cli command
	UsageOption     string                 // Expected command value in usage top line
	Description     string                 // Short text displayed on parent command
	FullDescription string                 // Long text displayed on current command
	ChildCommands   map[string]*CommandSet // Available subcommands
}

// Program configuration (JSON file, then DUPLOG_ environment overrides)
type Config struct {
	DupMsgScope int        `json:"dupMsgScope" env:"SCOPE"`
	Level       string     `json:"level" env:"LEVEL"`
	Outputs     Outputs    `json:"outputs" envPrefix:"OUTPUT_"`
	Metrics     MetricConf `json:"metrics" envPrefix:"METRICS_"`
}

type Outputs struct {
	Stdout   StdoutOutput   `json:"stdout" envPrefix:"STDOUT_"`
	File     FileOutput     `json:"file" envPrefix:"FILE_"`
	Beats    BeatsOutput    `json:"beats" envPrefix:"BEATS_"`
	Journald JournaldOutput `json:"journald" envPrefix:"JOURNALD_"`
}

type StdoutOutput struct {
	Enabled bool   `json:"enabled" env:"ENABLED"`
	Format  string `json:"format" env:"FORMAT"` // console or json
	Color   string `json:"color" env:"COLOR"`   // auto, always, never
}

type FileOutput struct {
	Path       string `json:"path" env:"PATH"` // empty disables the output
	Format     string `json:"format" env:"FORMAT"`
	MaxSizeMB  int    `json:"maxSizeMB" env:"MAX_SIZE_MB"`
	MaxBackups int    `json:"maxBackups" env:"MAX_BACKUPS"`
	MaxAgeDays int    `json:"maxAgeDays" env:"MAX_AGE_DAYS"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type BeatsOutput struct {
	Address     string `json:"address" env:"ADDRESS"` // host:port, empty disables the output
	Timeout     string `json:"timeout" env:"TIMEOUT"`
	Compression int    `json:"compression" env:"COMPRESSION"` // 0 (off) to 9
}

// Output is active when enabled or when a URL is set. Enabled without URL uses the local journal-remote.
type JournaldOutput struct {
	Enabled bool   `json:"enabled" env:"ENABLED"`
	URL     string `json:"url" env:"URL"` // journal-remote base URL
}

type MetricConf struct {
	Enabled    bool   `json:"enabled" env:"ENABLED"`
	ListenAddr string `json:"listenAddr" env:"LISTEN_ADDR"`
}
