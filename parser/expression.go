package parser

import (
	"strconv"

	"github.com/reusee/monkey/ast"
	"github.com/reusee/monkey/token"
)

// parseExpression folds infix rules into the left operand for as long as
// the next operator binds tighter than prec.
func (p *Parser) parseExpression(prec precedence) ast.Expression {
	prefix, ok := prefixParseFns[p.curToken.Kind]
	if !ok {
		p.noPrefixParseFnError(p.curToken.Kind)
		return nil
	}
	left := prefix(p)
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(token.Semicolon) && prec < p.peekPrecedence() {
		infix, ok := infixParseFns[p.peekToken.Kind]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(p, left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{
		Token: p.curToken,
		Value: p.curToken.Literal,
	}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf(p.curToken.Pos, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{
		Token: p.curToken,
		Value: value,
	}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{
		Token: p.curToken,
		Value: p.curTokenIs(token.True),
	}
}

func (p *Parser) parseIllegal() ast.Expression {
	p.errorf(p.curToken.Pos, "illegal token %q", p.curToken.Literal)
	return nil
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}
	p.nextToken()
	expr.Right = p.parseExpression(precPrefix)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}
	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RParen) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{
		Token: p.curToken,
	}

	if !p.expectPeek(token.LParen) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(precLowest)
	if expr.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.RParen) {
		return nil
	}

	if !p.expectPeek(token.LBrace) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.Else) {
		p.nextToken()
		if !p.expectPeek(token.LBrace) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{
		Token: p.curToken,
	}

	if !p.expectPeek(token.LParen) {
		return nil
	}
	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expectPeek(token.LBrace) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}

	return fn
}

func (p *Parser) parseFunctionParameters() (params []*ast.Identifier, ok bool) {
	if p.peekTokenIs(token.RParen) {
		p.nextToken()
		return params, true
	}

	for {
		if !p.expectPeek(token.Ident) {
			return nil, false
		}
		params = append(params, &ast.Identifier{
			Token: p.curToken,
			Value: p.curToken.Literal,
		})
		if !p.peekTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RParen) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{
		Token:    p.curToken,
		Function: function,
	}
	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	expr.Arguments = args
	return expr
}

func (p *Parser) parseCallArguments() (args []ast.Expression, ok bool) {
	if p.peekTokenIs(token.RParen) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	for {
		arg := p.parseExpression(precLowest)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if !p.peekTokenIs(token.Comma) {
			break
		}
		p.nextToken()
		p.nextToken()
	}

	if !p.expectPeek(token.RParen) {
		return nil, false
	}
	return args, true
}
