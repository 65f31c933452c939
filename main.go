// Released under an MIT license. See LICENSE.

/*
Zeus is a small Lisp. It reads expressions from a script, from the command
line or, when stdin is a terminal, from a console:

	zeus script.zs
	zeus -c '(+ 1 2)'
	zeus

Zeus is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/engine"
	"github.com/michaelmacinnis/zeus/internal/system/options"
	"github.com/michaelmacinnis/zeus/internal/ui"
)

func main() {
	o, err := options.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if err := run(o, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(o *options.T, stdin io.Reader, stdout io.Writer) error {
	e := engine.New(engine.Logger(logger(o.Debug())), engine.Output(stdout))

	switch {
	case o.Command() != "":
		return load(e, o.Command(), stdout, !o.Quiet())
	case o.Script() != "":
		b, err := os.ReadFile(o.Script())
		if err != nil {
			return err
		}

		return load(e, string(b), stdout, false)
	case o.Interactive():
		banner := ""
		if !o.Quiet() {
			banner = options.Version + ". Type exit to quit."
		}

		return ui.Run(e, banner)
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}

	return load(e, string(b), stdout, false)
}

// A leading #! line is skipped so scripts can be made executable.
func load(e *engine.T, source string, stdout io.Writer, echo bool) error {
	if strings.HasPrefix(source, "#!") {
		if i := strings.IndexByte(source, '\n'); i >= 0 {
			source = source[i:]
		} else {
			source = ""
		}
	}

	v, err := e.Load(source)
	if err != nil {
		return err
	}

	if echo {
		fmt.Fprintln(stdout, literal.String(v))
	}

	return nil
}

func logger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
