package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/monkey/token"
)

type tokenInfo struct {
	Kind    token.Kind
	Literal string
}

func collect(s *Scanner) (ret []tokenInfo) {
	for tok := range s.Tokens() {
		ret = append(ret, tokenInfo{tok.Kind, tok.Literal})
	}
	return
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input  string
		tokens []tokenInfo
	}{
		{
			input: "=+(){},;",
			tokens: []tokenInfo{
				{token.Assign, "="},
				{token.Plus, "+"},
				{token.LParen, "("},
				{token.RParen, ")"},
				{token.LBrace, "{"},
				{token.RBrace, "}"},
				{token.Comma, ","},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			input: "let five = 5;\nlet add = fn(x, y) {\n\tx + y;\r\n};",
			tokens: []tokenInfo{
				{token.Let, "let"},
				{token.Ident, "five"},
				{token.Assign, "="},
				{token.Int, "5"},
				{token.Semicolon, ";"},
				{token.Let, "let"},
				{token.Ident, "add"},
				{token.Assign, "="},
				{token.Function, "fn"},
				{token.LParen, "("},
				{token.Ident, "x"},
				{token.Comma, ","},
				{token.Ident, "y"},
				{token.RParen, ")"},
				{token.LBrace, "{"},
				{token.Ident, "x"},
				{token.Plus, "+"},
				{token.Ident, "y"},
				{token.Semicolon, ";"},
				{token.RBrace, "}"},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			input: "!-/*5; 5 < 10 > 5;",
			tokens: []tokenInfo{
				{token.Bang, "!"},
				{token.Minus, "-"},
				{token.Slash, "/"},
				{token.Asterisk, "*"},
				{token.Int, "5"},
				{token.Semicolon, ";"},
				{token.Int, "5"},
				{token.LT, "<"},
				{token.Int, "10"},
				{token.GT, ">"},
				{token.Int, "5"},
				{token.Semicolon, ";"},
				{token.EOF, ""},
			},
		},
		{
			input: "if (5 < 10) { return true; } else { return false; }",
			tokens: []tokenInfo{
				{token.If, "if"},
				{token.LParen, "("},
				{token.Int, "5"},
				{token.LT, "<"},
				{token.Int, "10"},
				{token.RParen, ")"},
				{token.LBrace, "{"},
				{token.Return, "return"},
				{token.True, "true"},
				{token.Semicolon, ";"},
				{token.RBrace, "}"},
				{token.Else, "else"},
				{token.LBrace, "{"},
				{token.Return, "return"},
				{token.False, "false"},
				{token.Semicolon, ";"},
				{token.RBrace, "}"},
				{token.EOF, ""},
			},
		},
		{
			input: "10 == 10; 10 != 9; a=!b",
			tokens: []tokenInfo{
				{token.Int, "10"},
				{token.Eq, "=="},
				{token.Int, "10"},
				{token.Semicolon, ";"},
				{token.Int, "10"},
				{token.NotEq, "!="},
				{token.Int, "9"},
				{token.Semicolon, ";"},
				{token.Ident, "a"},
				{token.Assign, "="},
				{token.Bang, "!"},
				{token.Ident, "b"},
				{token.EOF, ""},
			},
		},
		{
			input: "foo_bar _x x1 123abc",
			tokens: []tokenInfo{
				{token.Ident, "foo_bar"},
				{token.Ident, "_x"},
				{token.Ident, "x1"},
				{token.Int, "123"},
				{token.Ident, "abc"},
				{token.EOF, ""},
			},
		},
		{
			input: "a @ b $",
			tokens: []tokenInfo{
				{token.Ident, "a"},
				{token.Illegal, "@"},
				{token.Ident, "b"},
				{token.Illegal, "$"},
				{token.EOF, ""},
			},
		},
		{
			input: "x = 世",
			tokens: []tokenInfo{
				{token.Ident, "x"},
				{token.Assign, "="},
				{token.Ident, "世"},
				{token.EOF, ""},
			},
		},
		{
			input: "€",
			tokens: []tokenInfo{
				{token.Illegal, "€"},
				{token.EOF, ""},
			},
		},
		{
			input: "  \t\r\n ",
			tokens: []tokenInfo{
				{token.EOF, ""},
			},
		},
		{
			input:  "",
			tokens: []tokenInfo{{token.EOF, ""}},
		},
	}

	for _, test := range tests {
		got := collect(New("test", test.input))
		if diff := cmp.Diff(test.tokens, got); diff != "" {
			t.Fatalf("input %q:\n%s", test.input, diff)
		}
	}
}

func TestScannerEOFRepeats(t *testing.T) {
	s := New("test", "x")
	if tok := s.Next(); tok.Kind != token.Ident {
		t.Fatalf("got %v", tok)
	}
	for range 10 {
		tok := s.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("got %v", tok)
		}
		if tok.Literal != "" {
			t.Fatalf("got %q", tok.Literal)
		}
	}
}

func TestScannerPositions(t *testing.T) {
	s := New("test", "let x\n  = 10;")
	expected := []token.Pos{
		{Line: 1, Column: 1, Offset: 0},
		{Line: 1, Column: 5, Offset: 4},
		{Line: 2, Column: 3, Offset: 8},
		{Line: 2, Column: 5, Offset: 10},
		{Line: 2, Column: 7, Offset: 12},
		{Line: 2, Column: 8, Offset: 13},
	}
	var got []token.Pos
	for tok := range s.Tokens() {
		got = append(got, tok.Pos)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestScannerTokensBreak(t *testing.T) {
	s := New("test", "a b c d")
	n := 0
	for range s.Tokens() {
		n++
		if n == 2 {
			break
		}
	}
	if tok := s.Next(); tok.Literal != "c" {
		t.Fatalf("got %v", tok)
	}
}
