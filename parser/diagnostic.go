package parser

import (
	"fmt"
	"strings"

	"github.com/reusee/monkey/diag"
	"github.com/reusee/monkey/token"
)

type Diagnostic struct {
	Pos token.Pos
	Msg string
}

func (d *Diagnostic) Error() string {
	return d.Msg
}

// ErrorList is returned by Parse when any diagnostic was recorded.
type ErrorList []*Diagnostic

func (e ErrorList) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}
	var sb strings.Builder
	for i, d := range e {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(d.Error())
	}
	return sb.String()
}

func (e ErrorList) Unwrap() []error {
	ret := make([]error, 0, len(e))
	for _, d := range e {
		ret = append(ret, d)
	}
	return ret
}

// Located pairs each diagnostic with its source line for display.
func (e ErrorList) Located(source *diag.Source) []error {
	ret := make([]error, 0, len(e))
	for _, d := range e {
		ret = append(ret, diag.WithPos(d, d.Pos, source))
	}
	return ret
}

func (p *Parser) errorf(pos token.Pos, format string, args ...any) {
	p.diagnostics = append(p.diagnostics, &Diagnostic{
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
	})
}

func (p *Parser) peekError(kind token.Kind) {
	p.errorf(p.peekToken.Pos, "expected next token to be %s, got %s instead", kind, p.peekToken.Kind)
}

func (p *Parser) noPrefixParseFnError(kind token.Kind) {
	p.errorf(p.curToken.Pos, "no prefix parse function for %s found", kind)
}
