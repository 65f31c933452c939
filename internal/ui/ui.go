// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the zeus language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/zeus/internal/common/interface/cell"
	"github.com/michaelmacinnis/zeus/internal/common/interface/literal"
	"github.com/michaelmacinnis/zeus/internal/engine/env"
	"github.com/michaelmacinnis/zeus/internal/reader"
	"github.com/michaelmacinnis/zeus/internal/system/history"
)

const (
	continued = "....> "
	prompt    = "zeus> "
)

// Evaluator is the interface for things that evaluate parsed expressions.
type Evaluator interface {
	Env() *env.T
	Evaluate(c cell.I) (cell.I, error)
}

// Run reads expressions from the terminal and sends them to e until the
// user types exit or quit or ends the input. The banner, if any, is
// printed first.
func Run(e Evaluator, banner string) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Env().Names(), line, pos)
	})

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}

	if banner != "" {
		fmt.Println(banner)
	}

	source := ""

	for {
		p := prompt
		if source != "" {
			p = continued
		}

		line, err := cli.Prompt(p)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			source = ""

			continue
		case errors.Is(err, io.EOF):
			fmt.Println()

			return history.Save(cli.WriteHistory)
		case err != nil:
			return err
		}

		if source == "" && isExit(line) {
			return history.Save(cli.WriteHistory)
		}

		source += line + "\n"
		if !reader.Complete(source) {
			continue
		}

		if entry := strings.TrimSpace(source); entry != "" {
			cli.AppendHistory(entry)
		}

		Respond(os.Stdout, e, source)

		source = ""
	}
}

// Respond evaluates every expression in source, writing the literal form
// of each value, or the first error, to w.
func Respond(w io.Writer, e Evaluator, source string) {
	cs, err := reader.ReadAll(source)
	if err != nil {
		fmt.Fprintf(w, "Error: %s\n", err)

		return
	}

	for _, c := range cs {
		v, err := e.Evaluate(c)
		if err != nil {
			fmt.Fprintf(w, "Error: %s\n", err)

			return
		}

		fmt.Fprintln(w, literal.String(v))
	}
}

// The word being completed runs back from pos to the first character
// that cannot be part of a symbol.
func complete(names []string, line string, pos int) (string, []string, string) {
	rs := []rune(line)
	if pos > len(rs) {
		pos = len(rs)
	}

	start := pos
	for start > 0 && isWord(rs[start-1]) {
		start--
	}

	head, word, tail := string(rs[:start]), string(rs[start:pos]), string(rs[pos:])

	var cs []string

	for _, n := range names {
		if word != "" && strings.HasPrefix(n, word) {
			cs = append(cs, n)
		}
	}

	sort.Strings(cs)

	return head, cs, tail
}

func isExit(line string) bool {
	switch strings.TrimSpace(line) {
	case "exit", "quit":
		return true
	}

	return false
}

func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		strings.ContainsRune("+-*/<>=!?_", r)
}
