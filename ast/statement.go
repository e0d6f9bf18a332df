package ast

import (
	"strings"

	"github.com/reusee/monkey/token"
)

// LetStatement binds Name to Value.
type LetStatement struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

var _ Statement = new(LetStatement)

func (l *LetStatement) statementNode() {}

func (l *LetStatement) TokenLiteral() string {
	return l.Token.Literal
}

func (l *LetStatement) Pos() token.Pos {
	return l.Token.Pos
}

func (l *LetStatement) String() string {
	var sb strings.Builder
	sb.WriteString(l.TokenLiteral())
	sb.WriteString(" ")
	sb.WriteString(nodeString(l.Name))
	sb.WriteString(" = ")
	sb.WriteString(nodeString(l.Value))
	sb.WriteString(";")
	return sb.String()
}

type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression
}

var _ Statement = new(ReturnStatement)

func (r *ReturnStatement) statementNode() {}

func (r *ReturnStatement) TokenLiteral() string {
	return r.Token.Literal
}

func (r *ReturnStatement) Pos() token.Pos {
	return r.Token.Pos
}

func (r *ReturnStatement) String() string {
	var sb strings.Builder
	sb.WriteString(r.TokenLiteral())
	if !isNil(r.ReturnValue) {
		sb.WriteString(" ")
		sb.WriteString(r.ReturnValue.String())
	}
	sb.WriteString(";")
	return sb.String()
}

// ExpressionStatement is an expression in statement position, like a bare call.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

var _ Statement = new(ExpressionStatement)

func (e *ExpressionStatement) statementNode() {}

func (e *ExpressionStatement) TokenLiteral() string {
	return e.Token.Literal
}

func (e *ExpressionStatement) Pos() token.Pos {
	return e.Token.Pos
}

func (e *ExpressionStatement) String() string {
	return nodeString(e.Expression)
}

type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

var _ Statement = new(BlockStatement)

func (b *BlockStatement) statementNode() {}

func (b *BlockStatement) TokenLiteral() string {
	return b.Token.Literal
}

func (b *BlockStatement) Pos() token.Pos {
	return b.Token.Pos
}

func (b *BlockStatement) String() string {
	var sb strings.Builder
	for _, stmt := range b.Statements {
		sb.WriteString(stmt.String())
	}
	return sb.String()
}
