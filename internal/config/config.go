// Package config loads optional TOML defaults for cmd/janus and the
// streaming server, so operators don't have to repeat flags on every
// invocation.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults a TOML file may override.
type Config struct {
	MaxDepth           int    `toml:"max_depth"`
	TimeLimitMS        int    `toml:"time_limit_ms"`
	SnapshotIntervalMS int    `toml:"snapshot_interval_ms"`
	ListenAddr         string `toml:"listen_addr"`
}

// Default returns the built-in defaults used when no config file is
// given, matching the reference implementation's depth/time defaults.
func Default() Config {
	return Config{
		MaxDepth:           5,
		TimeLimitMS:        3000,
		SnapshotIntervalMS: 200,
		ListenAddr:         ":8080",
	}
}

// Load reads and merges a TOML file over Default(). Fields absent
// from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %q: %w", path, err)
	}
	return cfg, nil
}

// TimeLimit returns the configured time limit as a Duration.
func (c Config) TimeLimit() time.Duration {
	return time.Duration(c.TimeLimitMS) * time.Millisecond
}

// SnapshotInterval returns the configured snapshot interval as a
// Duration.
func (c Config) SnapshotInterval() time.Duration {
	return time.Duration(c.SnapshotIntervalMS) * time.Millisecond
}
