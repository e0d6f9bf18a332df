package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/reusee/monkey/token"
)

type PosError struct {
	Err    error
	Pos    token.Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil || !p.Pos.IsValid() {
		return p.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, p.Pos.Line, p.Pos.Column))

	// line content
	lines := p.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := strings.TrimSuffix(lines[idx], "\r")
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos token.Pos, source *Source) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}
