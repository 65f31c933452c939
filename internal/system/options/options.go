// Released under an MIT license. See LICENSE.

// Package options parses the zeus command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by zeus -v.
const Version = "zeus 0.1.0"

const usage = `zeus

Usage:
  zeus [-q] SCRIPT
  zeus [-q] -c EXPRESSION
  zeus [-q] [-d]
  zeus -h
  zeus -v

Arguments:
  SCRIPT     Path to zeus script.

Options:
  -c, --command=EXPRESSION  Evaluate the specified expression.
  -d, --debug               Log evaluation to stderr.
  -q, --quiet               Do not print values or the banner.
  -h, --help                Display this help.
  -v, --version             Print zeus version.

If zeus's stdin is a TTY, and zeus was invoked with no SCRIPT or EXPRESSION,
zeus reads expressions interactively. Otherwise, stdin is read as a script.
`

// T holds the parsed command line.
type T struct {
	command     string
	debug       bool
	interactive bool
	quiet       bool
	script      string
}

// Parse parses argv, not including the program name. It exits, like
// docopt, after printing help or the version.
func Parse(argv []string) (*T, error) {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.command, _ = opts.String("--command")
	o.debug, _ = opts.Bool("--debug")
	o.quiet, _ = opts.Bool("--quiet")
	o.script, _ = opts.String("SCRIPT")

	if o.command == "" && o.script == "" {
		o.interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return o, nil
}

// Command returns the expression passed with -c, if any.
func (o *T) Command() string {
	return o.command
}

// Debug returns true if evaluation should be logged.
func (o *T) Debug() bool {
	return o.debug
}

// Interactive returns true if zeus should start the console.
func (o *T) Interactive() bool {
	return o.interactive
}

// Quiet returns true if values and the banner should not be printed.
func (o *T) Quiet() bool {
	return o.quiet
}

// Script returns the path of the script to run, if any.
func (o *T) Script() string {
	return o.script
}
