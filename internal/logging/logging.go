// Package logging wires up the structured logger shared by every pipeline
// stage, using github.com/hashicorp/go-hclog the way hashicorp/nomad's
// command tree does: one root logger, with a Named() sub-logger per
// subsystem that logs (kb, prover).
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns a root logger at the given level ("trace", "debug", "info",
// "warn", "error"; an unrecognized level falls back to "info").
func New(level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:            "folresolve",
		Level:           hclog.LevelFromString(level),
		Output:          os.Stderr,
		IncludeLocation: false,
	})
}
