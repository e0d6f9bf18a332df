package ast

import (
	"strings"

	"github.com/reusee/monkey/token"
)

type Identifier struct {
	Token token.Token
	Value string
}

var _ Expression = new(Identifier)

func (i *Identifier) expressionNode() {}

func (i *Identifier) TokenLiteral() string {
	return i.Token.Literal
}

func (i *Identifier) Pos() token.Pos {
	return i.Token.Pos
}

func (i *Identifier) String() string {
	return i.Value
}

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

var _ Expression = new(IntegerLiteral)

func (i *IntegerLiteral) expressionNode() {}

func (i *IntegerLiteral) TokenLiteral() string {
	return i.Token.Literal
}

func (i *IntegerLiteral) Pos() token.Pos {
	return i.Token.Pos
}

func (i *IntegerLiteral) String() string {
	return i.Token.Literal
}

type Boolean struct {
	Token token.Token
	Value bool
}

var _ Expression = new(Boolean)

func (b *Boolean) expressionNode() {}

func (b *Boolean) TokenLiteral() string {
	return b.Token.Literal
}

func (b *Boolean) Pos() token.Pos {
	return b.Token.Pos
}

func (b *Boolean) String() string {
	return b.Token.Literal
}

// PrefixExpression is a unary operator applied to Right, rendered fully parenthesized.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

var _ Expression = new(PrefixExpression)

func (p *PrefixExpression) expressionNode() {}

func (p *PrefixExpression) TokenLiteral() string {
	return p.Token.Literal
}

func (p *PrefixExpression) Pos() token.Pos {
	return p.Token.Pos
}

func (p *PrefixExpression) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(p.Operator)
	sb.WriteString(nodeString(p.Right))
	sb.WriteString(")")
	return sb.String()
}

type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

var _ Expression = new(InfixExpression)

func (i *InfixExpression) expressionNode() {}

func (i *InfixExpression) TokenLiteral() string {
	return i.Token.Literal
}

func (i *InfixExpression) Pos() token.Pos {
	return i.Token.Pos
}

func (i *InfixExpression) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(nodeString(i.Left))
	sb.WriteString(" " + i.Operator + " ")
	sb.WriteString(nodeString(i.Right))
	sb.WriteString(")")
	return sb.String()
}

type IfExpression struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

var _ Expression = new(IfExpression)

func (i *IfExpression) expressionNode() {}

func (i *IfExpression) TokenLiteral() string {
	return i.Token.Literal
}

func (i *IfExpression) Pos() token.Pos {
	return i.Token.Pos
}

func (i *IfExpression) String() string {
	var sb strings.Builder
	sb.WriteString("if")
	sb.WriteString(nodeString(i.Condition))
	sb.WriteString(" ")
	sb.WriteString(nodeString(i.Consequence))
	if i.Alternative != nil {
		sb.WriteString("else ")
		sb.WriteString(i.Alternative.String())
	}
	return sb.String()
}

type FunctionLiteral struct {
	Token      token.Token
	Parameters []*Identifier
	Body       *BlockStatement
}

var _ Expression = new(FunctionLiteral)

func (f *FunctionLiteral) expressionNode() {}

func (f *FunctionLiteral) TokenLiteral() string {
	return f.Token.Literal
}

func (f *FunctionLiteral) Pos() token.Pos {
	return f.Token.Pos
}

func (f *FunctionLiteral) String() string {
	params := make([]string, 0, len(f.Parameters))
	for _, param := range f.Parameters {
		params = append(params, param.String())
	}
	var sb strings.Builder
	sb.WriteString(f.TokenLiteral())
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(") ")
	sb.WriteString(nodeString(f.Body))
	return sb.String()
}

// CallExpression applies Function, an identifier or function literal, to Arguments.
type CallExpression struct {
	Token     token.Token
	Function  Expression
	Arguments []Expression
}

var _ Expression = new(CallExpression)

func (c *CallExpression) expressionNode() {}

func (c *CallExpression) TokenLiteral() string {
	return c.Token.Literal
}

func (c *CallExpression) Pos() token.Pos {
	return c.Token.Pos
}

func (c *CallExpression) String() string {
	args := make([]string, 0, len(c.Arguments))
	for _, arg := range c.Arguments {
		args = append(args, nodeString(arg))
	}
	var sb strings.Builder
	sb.WriteString(nodeString(c.Function))
	sb.WriteString("(")
	sb.WriteString(strings.Join(args, ", "))
	sb.WriteString(")")
	return sb.String()
}
