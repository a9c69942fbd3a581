// Beats (lumberjack v2) output for the log pipeline
package beats

import (
	"duplog/internal/global"
	"fmt"
	"time"

	lumberjack "github.com/elastic/go-lumber/client/v2"
	"github.com/sugawarayuuta/sonnet"
)

// Creates new beats (lumberjack) output module. Returns nil nil if no address.
func NewOutput(conf global.BeatsOutput) (module *OutModule, err error) {
	if conf.Address == "" {
		return
	}

	timeout := global.DefaultBeatsTimeout
	if conf.Timeout != "" {
		timeout, err = time.ParseDuration(conf.Timeout)
		if err != nil {
			err = fmt.Errorf("invalid beats timeout '%s': %w", conf.Timeout, err)
			return
		}
	}

	ljClient, err := lumberjack.SyncDial(conf.Address,
		lumberjack.CompressionLevel(conf.Compression),
		lumberjack.Timeout(timeout),
		lumberjack.JSONEncoder(sonnet.Marshal),
	)
	if err != nil {
		err = fmt.Errorf("failed connection to beats server: %w", err)
		return
	}

	module = &OutModule{
		sink:     ljClient,
		endpoint: conf.Address,
	}
	return
}
