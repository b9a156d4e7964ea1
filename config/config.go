// Package config holds the process-level defaults of the drench CLI.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Size    int    // default board side length
	Board   string // default board generator
	Player  string // default solver
	Threads int    // bench worker count; 0 means one per CPU
	Debug   bool
}

// Load fills a Config from the built-in defaults and any DRENCH_*
// environment overrides (DRENCH_SIZE, DRENCH_PLAYER, ...). Command-line
// flags take precedence over both, at the CLI layer.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("drench")
	v.AutomaticEnv()

	v.SetDefault("size", 14)
	v.SetDefault("board", "random")
	v.SetDefault("player", "human")
	v.SetDefault("threads", 0)
	v.SetDefault("debug", false)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &c, nil
}
