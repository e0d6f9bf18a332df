package scanner

import (
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/reusee/monkey/token"
)

type Scanner struct {
	name   string
	src    string
	source *strings.Reader

	currPos token.Pos
	prevPos token.Pos
}

func New(name string, src string) *Scanner {
	return &Scanner{
		name:   name,
		src:    src,
		source: strings.NewReader(src),
		currPos: token.Pos{
			Line:   1,
			Column: 1,
		},
	}
}

func (s *Scanner) Name() string {
	return s.name
}

func (s *Scanner) Source() string {
	return s.src
}

func (s *Scanner) readRune() (rune, error) {
	r, size, err := s.source.ReadRune()
	if err != nil {
		return 0, err
	}

	s.prevPos = s.currPos
	s.currPos.Offset += size
	if r == '\n' {
		s.currPos.Line++
		s.currPos.Column = 1
	} else {
		s.currPos.Column++
	}

	return r, nil
}

func (s *Scanner) unreadRune() {
	s.source.UnreadRune()
	s.currPos = s.prevPos
}

// Next returns the next token. After the input is exhausted it keeps
// returning EOF tokens.
func (s *Scanner) Next() token.Token {
	s.skipWhitespace()
	startPos := s.currPos

	r, err := s.readRune()
	if err == io.EOF {
		return token.Token{Kind: token.EOF, Pos: startPos}
	}

	switch {
	case isLetter(r):
		s.unreadRune()
		return s.scanIdentifier()
	case isDigit(r):
		s.unreadRune()
		return s.scanInteger()
	}

	if tok, ok := s.scanSymbol(r, startPos); ok {
		return tok
	}

	return token.Token{
		Kind:    token.Illegal,
		Literal: s.text(startPos),
		Pos:     startPos,
	}
}

// Tokens yields tokens up to and including the first EOF.
func (s *Scanner) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := s.Next()
			if !yield(tok) {
				return
			}
			if tok.Kind == token.EOF {
				return
			}
		}
	}
}

func (s *Scanner) text(start token.Pos) string {
	return s.src[start.Offset:s.currPos.Offset]
}

func (s *Scanner) skipWhitespace() {
	for {
		r, err := s.readRune()
		if err != nil {
			return
		}
		if !isWhitespace(r) {
			s.unreadRune()
			return
		}
	}
}

func (s *Scanner) scanIdentifier() token.Token {
	startPos := s.currPos
	for {
		r, err := s.readRune()
		if err != nil {
			break
		}
		if !isLetter(r) && !isDigit(r) {
			s.unreadRune()
			break
		}
	}
	text := s.text(startPos)
	return token.Token{
		Kind:    token.LookupIdent(text),
		Literal: text,
		Pos:     startPos,
	}
}

func (s *Scanner) scanInteger() token.Token {
	startPos := s.currPos
	for {
		r, err := s.readRune()
		if err != nil {
			break
		}
		if !isDigit(r) {
			s.unreadRune()
			break
		}
	}
	return token.Token{
		Kind:    token.Int,
		Literal: s.text(startPos),
		Pos:     startPos,
	}
}

func (s *Scanner) scanSymbol(r rune, startPos token.Pos) (token.Token, bool) {
	// two-character operators first
	next, err := s.readRune()
	if err == nil {
		if kind, ok := token.LookupSymbol(string(r) + string(next)); ok {
			return token.Token{
				Kind:    kind,
				Literal: s.text(startPos),
				Pos:     startPos,
			}, true
		}
		s.unreadRune()
	}

	kind, ok := token.LookupSymbol(string(r))
	if !ok {
		return token.Token{}, false
	}
	return token.Token{
		Kind:    kind,
		Literal: s.text(startPos),
		Pos:     startPos,
	}, true
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
