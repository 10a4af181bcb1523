// Command folresolve answers ground FOL queries against a knowledge base
// by refutation. It reads a fixed-format input.txt and writes one
// TRUE/FALSE line per query to output.txt. The command
// surface itself is not part of the specified core; it exists
// only to drive that core end to end, using github.com/hashicorp/cli the
// way hashicorp/nomad's command tree wires up its own subcommands.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"

	"github.com/kailashmaurya/folresolution/internal/clause"
	"github.com/kailashmaurya/folresolution/internal/config"
	"github.com/kailashmaurya/folresolution/internal/ioformat"
	"github.com/kailashmaurya/folresolution/internal/kb"
	"github.com/kailashmaurya/folresolution/internal/logging"
	"github.com/kailashmaurya/folresolution/internal/prover"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	if len(args) == 0 {
		args = []string{"run"}
	}

	c := cli.NewCLI("folresolve", "0.1.0")
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) { return &runCommand{}, nil },
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

// runCommand is the sole subcommand: load the knowledge base, answer every
// query, write the results.
type runCommand struct{}

func (c *runCommand) Help() string {
	return strings.TrimSpace(`
Usage: folresolve run [options]

  Answers the ground queries in the input file against the knowledge base
  sentences also found there, writing one TRUE/FALSE line per query.

Options:

  -input=input.txt        Path to the input file.
  -output=output.txt       Path to the output file.
  -kill-limit=8000        Resolver working-set cutoff.
  -log-level=info         Log level: trace, debug, info, warn, error.
`)
}

func (c *runCommand) Synopsis() string {
	return "Answer queries from input.txt, writing output.txt"
}

func (c *runCommand) Run(args []string) int {
	var inputPath, outputPath, killLimit, logLevel string
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.StringVar(&inputPath, "input", "", "path to input file")
	fs.StringVar(&outputPath, "output", "", "path to output file")
	fs.StringVar(&killLimit, "kill-limit", "", "resolver working-set cutoff")
	fs.StringVar(&logLevel, "log-level", "", "log level")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	opts := []config.Option{}
	if inputPath != "" {
		opts = append(opts, config.WithInputPath(inputPath))
	}
	if outputPath != "" {
		opts = append(opts, config.WithOutputPath(outputPath))
	}
	if killLimit != "" {
		opts = append(opts, config.WithKillLimitString(killLimit))
	}
	if logLevel != "" {
		opts = append(opts, config.WithLogLevel(logLevel))
	}
	cfg := config.New(opts...)
	logger := logging.New(cfg.LogLevel)

	problem, err := ioformat.ReadInput(cfg.InputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	queries := make([]clause.Literal, len(problem.Queries))
	for i, q := range problem.Queries {
		lit, err := prover.ParseQuery(q)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		queries[i] = lit
	}

	base, err := kb.Load(problem.Sentences, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	writer, err := ioformat.CreateWriter(cfg.OutputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer writer.Close()

	driver := prover.New(base, cfg.KillLimit, logger)
	for _, lit := range queries {
		if err := writer.WriteResult(driver.Prove(lit)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}
