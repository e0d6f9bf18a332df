package token

import "strconv"

type Kind uint8

const (
	Illegal Kind = iota
	EOF

	Ident
	Int

	Assign
	Plus
	Minus
	Bang
	Asterisk
	Slash

	LT
	GT
	Eq
	NotEq

	Comma
	Semicolon

	LParen
	RParen
	LBrace
	RBrace

	Function
	Let
	True
	False
	If
	Else
	Return

	numKinds
)

var kindNames = [...]string{
	Illegal:   "ILLEGAL",
	EOF:       "EOF",
	Ident:     "IDENT",
	Int:       "INT",
	Assign:    "=",
	Plus:      "+",
	Minus:     "-",
	Bang:      "!",
	Asterisk:  "*",
	Slash:     "/",
	LT:        "<",
	GT:        ">",
	Eq:        "==",
	NotEq:     "!=",
	Comma:     ",",
	Semicolon: ";",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Function:  "FUNCTION",
	Let:       "LET",
	True:      "TRUE",
	False:     "FALSE",
	If:        "IF",
	Else:      "ELSE",
	Return:    "RETURN",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

var keywords = map[string]Kind{
	"fn":     Function,
	"let":    Let,
	"true":   True,
	"false":  False,
	"if":     If,
	"else":   Else,
	"return": Return,
}

// LookupIdent maps identifier text to its keyword kind, or Ident.
func LookupIdent(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}

func (k Kind) IsKeyword() bool {
	return k >= Function && k <= Return
}

var symbols = map[string]Kind{
	"=":  Assign,
	"+":  Plus,
	"-":  Minus,
	"!":  Bang,
	"*":  Asterisk,
	"/":  Slash,
	"<":  LT,
	">":  GT,
	"==": Eq,
	"!=": NotEq,
	",":  Comma,
	";":  Semicolon,
	"(":  LParen,
	")":  RParen,
	"{":  LBrace,
	"}":  RBrace,
}

// LookupSymbol maps operator and punctuation text to its kind.
func LookupSymbol(text string) (Kind, bool) {
	kind, ok := symbols[text]
	return kind, ok
}
