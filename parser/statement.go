package parser

import (
	"github.com/reusee/monkey/ast"
	"github.com/reusee/monkey/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Kind {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{
		Token: p.curToken,
	}

	if !p.expectPeek(token.Ident) {
		return nil
	}
	stmt.Name = &ast.Identifier{
		Token: p.curToken,
		Value: p.curToken.Literal,
	}

	if !p.expectPeek(token.Assign) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(precLowest)
	if stmt.Value == nil {
		return nil
	}

	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{
		Token: p.curToken,
	}

	// bare return
	switch p.peekToken.Kind {
	case token.Semicolon:
		p.nextToken()
		return stmt
	case token.RBrace, token.EOF:
		return stmt
	}
	p.nextToken()

	stmt.ReturnValue = p.parseExpression(precLowest)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{
		Token: p.curToken,
	}

	stmt.Expression = p.parseExpression(precLowest)
	if stmt.Expression == nil {
		return nil
	}

	// optional terminator
	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{
		Token: p.curToken,
	}
	p.nextToken()

	for !p.curTokenIs(token.RBrace) {
		if p.curTokenIs(token.EOF) {
			p.errorf(p.curToken.Pos, "expected next token to be %s, got %s instead", token.RBrace, token.EOF)
			return nil
		}
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}
