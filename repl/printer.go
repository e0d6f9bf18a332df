package repl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/reusee/monkey/diag"
	"github.com/reusee/monkey/dump"
	"github.com/reusee/monkey/modes"
	"github.com/reusee/monkey/monkeyconfigs"
	"github.com/reusee/monkey/parser"
	"github.com/reusee/monkey/scanner"
	"github.com/reusee/monkey/token"
)

// Printer renders one line of input according to Mode.
type Printer struct {
	Mode  monkeyconfigs.ReplMode
	Color bool
}

// NewPrinter enables colors only when out is a terminal in an interactive mode.
func NewPrinter(replMode monkeyconfigs.ReplMode, mode modes.Mode, out *os.File) Printer {
	return Printer{
		Mode:  replMode,
		Color: mode.Interactive() && isTerminal(out),
	}
}

func (p Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Print scans or parses src and writes the result to w.
// Diagnostics are written too; the returned error only reports failed writes.
func (p Printer) Print(w io.Writer, name string, src string) error {
	if p.Mode == monkeyconfigs.ReplTokens {
		kind := p.paint(color.FgCyan)
		for tok := range scanner.New(name, src).Tokens() {
			if tok.Kind == token.EOF {
				break
			}
			c := kind
			if tok.Kind == token.Illegal {
				c = p.paint(color.FgRed)
			}
			if _, err := c.Fprintln(w, tok.String()); err != nil {
				return err
			}
		}
		return nil
	}

	program, err := parser.Parse(name, src)
	if err != nil {
		var list parser.ErrorList
		if !errors.As(err, &list) {
			return err
		}
		return p.PrintErrors(w, list.Located(diag.NewSource(name, src)))
	}

	switch p.Mode {
	case monkeyconfigs.ReplDump:
		return dump.Encode(w, program)
	default:
		_, err = fmt.Fprintln(w, program.String())
		return err
	}
}

func (p Printer) PrintErrors(w io.Writer, errs []error) error {
	c := p.paint(color.FgRed)
	for _, err := range errs {
		if _, err := c.Fprint(w, ensureNewline(err.Error())); err != nil {
			return err
		}
	}
	return nil
}

func ensureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
