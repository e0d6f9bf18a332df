package ast

import (
	"strings"

	"github.com/reusee/monkey/token"
)

type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Pos
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
}

var _ Node = new(Program)

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
	}
	return sb.String()
}

func (p *Program) Pos() token.Pos {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Pos{}
}

// nodeString renders a possibly nil child.
func nodeString(node Node) string {
	if isNil(node) {
		return ""
	}
	return node.String()
}

func isNil(node Node) bool {
	switch node := node.(type) {
	case nil:
		return true
	case *Identifier:
		return node == nil
	case *BlockStatement:
		return node == nil
	}
	return false
}
