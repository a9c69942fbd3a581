package global

import "time"

const (
	ProgVersion  string = "v0.3.0"
	ProgBaseName string = "duplog"

	// Prefix for environment overrides of config values
	EnvPrefix string = "DUPLOG_"

	DefaultConfigPath string = "/etc/duplog.json"
	DefaultScope      int    = 5
	DefaultLevel      string = "info"

	DefaultJournaldURL = "http://localhost:19532"

	// Output formats
	FormatConsole string = "console"
	FormatJSON    string = "json"

	// Stdout colour modes
	ColorAuto   string = "auto"
	ColorAlways string = "always"
	ColorNever  string = "never"

	// Rotating file defaults
	DefaultFileMaxSizeMB  int = 100
	DefaultFileMaxBackups int = 5
	DefaultFileMaxAgeDays int = 30

	// Beats defaults
	DefaultBeatsTimeout time.Duration = 3 * time.Second

	// Metric HTTP server
	DefaultMetricAddr string        = "localhost:9464" // Metric queries only exposed to local machine
	HTTPReadTimeout   time.Duration = 30 * time.Second
	HTTPWriteTimeout  time.Duration = 10 * time.Second
	HTTPIdleTimeout   time.Duration = 180 * time.Second

	// Pipeline drain budget on shutdown
	ShutdownTimeout time.Duration = 20 * time.Second
)
