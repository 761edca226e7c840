// Package config loads phix.toml, the optional project manifest that
// selects rules and tunes the rewrite driver. Discovery walks upward
// from the start directory, so running phix anywhere inside a project
// picks up the same settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest file phix looks for.
const FileName = "phix.toml"

// Config is the decoded phix.toml plus where it was found. The zero
// value (no manifest) is a valid configuration with defaults.
type Config struct {
	// Path is the absolute manifest location, empty when defaults are
	// in effect.
	Path string `toml:"-"`
	// Root is the directory holding the manifest, empty without one.
	Root string `toml:"-"`

	Rules   RulesConfig   `toml:"rules"`
	Cache   CacheConfig   `toml:"cache"`
	Rewrite RewriteConfig `toml:"rewrite"`
}

// RulesConfig selects which rules run. Enable narrows the set to the
// listed names; Disable then removes names from whatever is enabled.
type RulesConfig struct {
	Enable  []string `toml:"enable"`
	Disable []string `toml:"disable"`
}

// CacheConfig controls the token disk cache.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`
}

// RewriteConfig tunes the parallel driver.
type RewriteConfig struct {
	// Jobs is the number of files rewritten concurrently. Zero means
	// one worker per CPU.
	Jobs int `toml:"jobs"`
}

// Default returns the configuration used when no manifest exists:
// every registered rule enabled, cache on, one worker per CPU.
func Default() *Config {
	return &Config{
		Cache:   CacheConfig{Enabled: true},
		Rewrite: RewriteConfig{Jobs: 0},
	}
}

// EffectiveJobs resolves the worker count, falling back to the CPU
// count when jobs is unset or nonsense.
func (c *Config) EffectiveJobs() int {
	if c.Rewrite.Jobs > 0 {
		return c.Rewrite.Jobs
	}
	return runtime.NumCPU()
}

// SelectRuleNames applies the enable/disable lists to the registered
// rule names, preserving registration order. Unknown names in either
// list are an error so a typo cannot silently run the wrong set.
func (c *Config) SelectRuleNames(registered []string) ([]string, error) {
	known := make(map[string]bool, len(registered))
	for _, name := range registered {
		known[name] = true
	}
	for _, name := range c.Rules.Enable {
		if !known[name] {
			return nil, fmt.Errorf("%s: [rules].enable lists unknown rule %q", c.describe(), name)
		}
	}
	for _, name := range c.Rules.Disable {
		if !known[name] {
			return nil, fmt.Errorf("%s: [rules].disable lists unknown rule %q", c.describe(), name)
		}
	}

	enabled := make(map[string]bool, len(registered))
	if len(c.Rules.Enable) == 0 {
		for _, name := range registered {
			enabled[name] = true
		}
	} else {
		for _, name := range c.Rules.Enable {
			enabled[name] = true
		}
	}
	for _, name := range c.Rules.Disable {
		delete(enabled, name)
	}

	out := make([]string, 0, len(enabled))
	for _, name := range registered {
		if enabled[name] {
			out = append(out, name)
		}
	}
	return out, nil
}

func (c *Config) describe() string {
	if c.Path != "" {
		return c.Path
	}
	return FileName
}

// Find walks upward from startDir looking for phix.toml. It reports
// the manifest path and whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the manifest governing startDir. Without one
// it returns Default(), so callers never branch on presence.
func Load(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile decodes one manifest. Missing sections keep their defaults;
// unknown keys are rejected because a misspelled section silently
// doing nothing is worse than an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: parse: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Rewrite.Jobs < 0 {
		return nil, fmt.Errorf("%s: [rewrite].jobs must not be negative", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%s: resolve: %w", path, err)
	}
	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)
	return cfg, nil
}
