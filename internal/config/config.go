// Program configuration: JSON file, DUPLOG_ environment overrides, defaults, validation
package config

import (
	"duplog/internal/global"
	"duplog/pkg/duplog"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/sugawarayuuta/sonnet"
)

// Loads JSON config from file
func LoadConfig(path string) (cfg global.Config, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %w", err)
		return
	}

	err = sonnet.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %w", path, err)
		return
	}

	return
}

// Location checked when no config path is given
var defaultConfigPath = global.DefaultConfigPath

// Builds the effective config. Empty path reads the default config file if it exists,
// otherwise only defaults and environment apply.
func Load(path string) (cfg global.Config, err error) {
	if path == "" {
		if _, statErr := os.Stat(defaultConfigPath); statErr == nil {
			path = defaultConfigPath
		}
	}
	if path != "" {
		cfg, err = LoadConfig(path)
		if err != nil {
			return
		}
	}

	// Environment only overrides variables that are set
	err = env.ParseWithOptions(&cfg, env.Options{Prefix: global.EnvPrefix})
	if err != nil {
		err = fmt.Errorf("invalid environment config: %w", err)
		return
	}

	setDefaults(&cfg)

	err = Validate(cfg)
	if err != nil {
		return
	}
	return
}

// Sets defaults for any missing values
func setDefaults(cfg *global.Config) {
	if cfg.DupMsgScope == 0 {
		cfg.DupMsgScope = global.DefaultScope
	}
	if cfg.Level == "" {
		cfg.Level = global.DefaultLevel
	}

	// Stdout
	if cfg.Outputs.Stdout.Format == "" {
		cfg.Outputs.Stdout.Format = global.FormatConsole
	}
	if cfg.Outputs.Stdout.Color == "" {
		cfg.Outputs.Stdout.Color = global.ColorAuto
	}

	// File
	if cfg.Outputs.File.Format == "" {
		cfg.Outputs.File.Format = global.FormatConsole
	}
	if cfg.Outputs.File.MaxSizeMB == 0 {
		cfg.Outputs.File.MaxSizeMB = global.DefaultFileMaxSizeMB
	}
	if cfg.Outputs.File.MaxBackups == 0 {
		cfg.Outputs.File.MaxBackups = global.DefaultFileMaxBackups
	}
	if cfg.Outputs.File.MaxAgeDays == 0 {
		cfg.Outputs.File.MaxAgeDays = global.DefaultFileMaxAgeDays
	}

	// Beats
	if cfg.Outputs.Beats.Timeout == "" {
		cfg.Outputs.Beats.Timeout = global.DefaultBeatsTimeout.String()
	}

	// Journald
	if cfg.Outputs.Journald.Enabled && cfg.Outputs.Journald.URL == "" {
		cfg.Outputs.Journald.URL = global.DefaultJournaldURL
	}

	// Metrics
	if cfg.Metrics.ListenAddr == "" {
		cfg.Metrics.ListenAddr = global.DefaultMetricAddr
	}
}

// Checks config values are usable
func Validate(cfg global.Config) (err error) {
	if cfg.DupMsgScope < 1 {
		err = fmt.Errorf("dupMsgScope %d: %w", cfg.DupMsgScope, duplog.ErrInvalidScope)
		return
	}

	_, err = duplog.ParseLevel(cfg.Level)
	if err != nil {
		err = fmt.Errorf("invalid level: %w", err)
		return
	}

	err = validFormat("stdout", cfg.Outputs.Stdout.Format)
	if err != nil {
		return
	}
	err = validFormat("file", cfg.Outputs.File.Format)
	if err != nil {
		return
	}

	switch cfg.Outputs.Stdout.Color {
	case global.ColorAuto, global.ColorAlways, global.ColorNever:
	default:
		err = fmt.Errorf("invalid stdout color mode '%s': must be %s, %s or %s",
			cfg.Outputs.Stdout.Color, global.ColorAuto, global.ColorAlways, global.ColorNever)
		return
	}

	if cfg.Outputs.File.MaxSizeMB < 0 || cfg.Outputs.File.MaxBackups < 0 || cfg.Outputs.File.MaxAgeDays < 0 {
		err = fmt.Errorf("file rotation limits must not be negative")
		return
	}

	timeout, err := time.ParseDuration(cfg.Outputs.Beats.Timeout)
	if err != nil {
		err = fmt.Errorf("invalid beats timeout: %w", err)
		return
	}
	if timeout <= 0 {
		err = fmt.Errorf("beats timeout must be positive, got %s", timeout)
		return
	}
	if cfg.Outputs.Beats.Compression < 0 || cfg.Outputs.Beats.Compression > 9 {
		err = fmt.Errorf("beats compression level %d out of range 0-9", cfg.Outputs.Beats.Compression)
		return
	}

	if cfg.Metrics.Enabled && cfg.Metrics.ListenAddr == "" {
		err = fmt.Errorf("metrics enabled without listen address")
		return
	}
	return
}

func validFormat(output string, format string) (err error) {
	switch format {
	case global.FormatConsole, global.FormatJSON:
	default:
		err = fmt.Errorf("invalid %s format '%s': must be %s or %s", output, format, global.FormatConsole, global.FormatJSON)
	}
	return
}
