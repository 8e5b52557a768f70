// Package bootstrap loads run configuration from defaults and an
// optional config file.
package bootstrap

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the knobs for games and tournaments.
type Config struct {
	BoardSizes []int   `mapstructure:"board_sizes"`
	Games      int     `mapstructure:"games"`
	Depth      int     `mapstructure:"depth"`
	Komi       float64 `mapstructure:"komi"`
	MaxMoves   int     `mapstructure:"max_moves"`
	Seed       uint64  `mapstructure:"seed"`
	OutputDir  string  `mapstructure:"output_dir"`
	LogLevel   string  `mapstructure:"log_level"`
}

// Setup returns the configuration, reading cfgPath on top of the
// defaults when it is non-empty.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("board_sizes", []int{9, 13, 19})
	v.SetDefault("games", 10)
	v.SetDefault("depth", 2)
	v.SetDefault("komi", 0.0)
	v.SetDefault("max_moves", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("output_dir", "results")
	v.SetDefault("log_level", "info")

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
