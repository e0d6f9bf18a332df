package token

import "fmt"

type Token struct {
	Kind    Kind
	Literal string
	Pos     Pos
}

func (t Token) String() string {
	return fmt.Sprintf("{Kind:%s Literal:%q}", t.Kind, t.Literal)
}

type Pos struct {
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Pos) IsValid() bool {
	return p.Line > 0
}
