package diag

import (
	"errors"
	"testing"

	"github.com/reusee/monkey/token"
)

func TestPosError(t *testing.T) {
	source := NewSource("test", "let x = 5;\nlet = 10;")
	err := WithPos(
		errors.New("expected next token to be IDENT, got = instead"),
		token.Pos{Line: 2, Column: 5},
		source,
	)
	expected := "expected next token to be IDENT, got = instead at test:2:5\n" +
		"let = 10;\n" +
		"    ^\n"
	if str := err.Error(); str != expected {
		t.Fatalf("got %q", str)
	}
}

func TestPosErrorWideRunes(t *testing.T) {
	source := NewSource("test", "世界 @")
	err := WithPos(errors.New("bad"), token.Pos{Line: 1, Column: 4}, source)
	expected := "bad at test:1:4\n世界 @\n     ^\n"
	if str := err.Error(); str != expected {
		t.Fatalf("got %q", str)
	}
}

func TestPosErrorTabs(t *testing.T) {
	source := NewSource("test", "\tx $")
	err := WithPos(errors.New("bad"), token.Pos{Line: 1, Column: 4}, source)
	expected := "bad at test:1:4\n\tx $\n\t  ^\n"
	if str := err.Error(); str != expected {
		t.Fatalf("got %q", str)
	}
}

func TestWithPos(t *testing.T) {
	if WithPos(nil, token.Pos{}, nil) != nil {
		t.Fatal()
	}

	base := errors.New("foo")
	err := WithPos(base, token.Pos{Line: 1, Column: 1}, nil)
	if !errors.Is(err, base) {
		t.Fatal()
	}
	if err.Error() != "foo" {
		t.Fatalf("got %v", err)
	}

	// keeps the innermost position
	again := WithPos(err, token.Pos{Line: 9, Column: 9}, nil)
	var posErr PosError
	if !errors.As(again, &posErr) {
		t.Fatal()
	}
	if posErr.Pos.Line != 1 {
		t.Fatalf("got %v", posErr.Pos)
	}
}
