package parser

import (
	"github.com/reusee/monkey/ast"
	"github.com/reusee/monkey/scanner"
	"github.com/reusee/monkey/token"
)

type (
	prefixParseFn func(p *Parser) ast.Expression
	infixParseFn  func(p *Parser, left ast.Expression) ast.Expression
)

// read-only after init
var (
	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
)

func init() {
	prefixParseFns = map[token.Kind]prefixParseFn{
		token.Ident:    (*Parser).parseIdentifier,
		token.Int:      (*Parser).parseIntegerLiteral,
		token.Bang:     (*Parser).parsePrefixExpression,
		token.Minus:    (*Parser).parsePrefixExpression,
		token.True:     (*Parser).parseBoolean,
		token.False:    (*Parser).parseBoolean,
		token.LParen:   (*Parser).parseGroupedExpression,
		token.If:       (*Parser).parseIfExpression,
		token.Function: (*Parser).parseFunctionLiteral,
		token.Illegal:  (*Parser).parseIllegal,
	}

	infixParseFns = map[token.Kind]infixParseFn{
		token.Plus:     (*Parser).parseInfixExpression,
		token.Minus:    (*Parser).parseInfixExpression,
		token.Asterisk: (*Parser).parseInfixExpression,
		token.Slash:    (*Parser).parseInfixExpression,
		token.Eq:       (*Parser).parseInfixExpression,
		token.NotEq:    (*Parser).parseInfixExpression,
		token.LT:       (*Parser).parseInfixExpression,
		token.GT:       (*Parser).parseInfixExpression,
		token.LParen:   (*Parser).parseCallExpression,
	}
}

// Parser is single use: call ParseProgram once, then inspect Errors.
type Parser struct {
	scanner *scanner.Scanner

	curToken  token.Token
	peekToken token.Token

	diagnostics []*Diagnostic
}

func New(s *scanner.Scanner) *Parser {
	p := &Parser{
		scanner: s,
	}
	// fill curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Parse scans and parses src. The returned error is an ErrorList when
// anything was reported; the program holds whatever could be parsed.
func Parse(name string, src string) (*ast.Program, error) {
	p := New(scanner.New(name, src))
	program := p.ParseProgram()
	if len(p.diagnostics) > 0 {
		return program, ErrorList(p.diagnostics)
	}
	return program, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.scanner.Next()
}

func (p *Parser) curTokenIs(kind token.Kind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenIs(kind token.Kind) bool {
	return p.peekToken.Kind == kind
}

// expectPeek advances when the next token has the given kind and records
// a diagnostic otherwise.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) peekPrecedence() precedence {
	return precedenceOf(p.peekToken.Kind)
}

func (p *Parser) curPrecedence() precedence {
	return precedenceOf(p.curToken.Kind)
}

func (p *Parser) Errors() []string {
	ret := make([]string, 0, len(p.diagnostics))
	for _, d := range p.diagnostics {
		ret = append(ret, d.Msg)
	}
	return ret
}

func (p *Parser) Diagnostics() []*Diagnostic {
	return p.diagnostics
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}
