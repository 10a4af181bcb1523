// Package config holds the small set of knobs the prover exposes: input and
// output file paths and the resolver's size cutoff, built with the same
// functional-options constructor pattern used for solver configuration
// elsewhere in this module's ancestry, scaled down to the handful of
// options a batch file-in/file-out tool actually needs — there are no
// environment variables and no network or server configuration to carry.
package config

import (
	"github.com/spf13/cast"

	"github.com/kailashmaurya/folresolution/internal/resolve"
)

// Config is the resolved set of runtime knobs.
type Config struct {
	InputPath  string
	OutputPath string
	KillLimit  int
	LogLevel   string
}

// Option customizes a Config produced by New.
type Option func(*Config)

// WithInputPath overrides the default "input.txt" path.
func WithInputPath(path string) Option {
	return func(c *Config) { c.InputPath = path }
}

// WithOutputPath overrides the default "output.txt" path.
func WithOutputPath(path string) Option {
	return func(c *Config) { c.OutputPath = path }
}

// WithKillLimit overrides the resolver's working-KB size cutoff.
func WithKillLimit(limit int) Option {
	return func(c *Config) { c.KillLimit = limit }
}

// WithKillLimitString parses limit (as supplied by a CLI flag) into an int
// using spf13/cast, which tolerates the empty-string "unset" case by
// leaving the default untouched.
func WithKillLimitString(limit string) Option {
	return func(c *Config) {
		if limit == "" {
			return
		}
		if n := cast.ToInt(limit); n > 0 {
			c.KillLimit = n
		}
	}
}

// WithLogLevel overrides the default log level ("info").
func WithLogLevel(level string) Option {
	return func(c *Config) { c.LogLevel = level }
}

// New returns the default Config — fixed file paths, and the
// resolver's documented cutoff — with opts applied on top.
func New(opts ...Option) Config {
	c := Config{
		InputPath:  "input.txt",
		OutputPath: "output.txt",
		KillLimit:  resolve.KillLimit,
		LogLevel:   "info",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
