// File: control/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Startup configuration, optionally loaded from a YAML file. Values only
// ever lower the built-in limits: worker counts above the global ceiling are
// clamped, cutoffs below the engine floor are raised by the engine itself.

package control

import (
	"fmt"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/momentics/parfor/internal/concurrency"
)

// Config holds parameters immutable per run.
type Config struct {
	// Workers is the ambient pool size; 0 means the global ceiling.
	Workers int `yaml:"workers"`

	// PinWorkers requests CPU affinity for pool workers.
	PinWorkers bool `yaml:"pinWorkers"`

	// DefaultCutoff is the parallelization cutoff consumers use when they
	// have no better estimate of per-element cost.
	DefaultCutoff int `yaml:"defaultCutoff"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers:       0,
		PinWorkers:    false,
		DefaultCutoff: 1024,
	}
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

var defaultCutoff atomic.Int64

func init() {
	defaultCutoff.Store(int64(DefaultConfig().DefaultCutoff))
}

// Apply installs cfg. Pool parameters take effect only if the ambient pool
// has not been constructed yet; the boolean reports whether they were
// applied. A nil cfg applies the defaults.
func Apply(cfg *Config) bool {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cutoff := cfg.DefaultCutoff
	if cutoff < 2 {
		cutoff = 2
	}
	defaultCutoff.Store(int64(cutoff))
	return concurrency.Configure(cfg.Workers, cfg.PinWorkers)
}

// DefaultCutoff returns the configured fallback cutoff.
func DefaultCutoff() int {
	return int(defaultCutoff.Load())
}
