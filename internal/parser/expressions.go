package parser

import (
	"strconv"

	"github.com/cwbudde/go-mscript/internal/ast"
	"github.com/cwbudde/go-mscript/internal/lexer"
)

var builtinFuncs = map[lexer.TokenType]ast.BuiltinFunc{
	lexer.ZEROS: ast.FuncZeros,
	lexer.ONES:  ast.FuncOnes,
	lexer.EYE:   ast.FuncEye,
}

// parseExpression is a standard Pratt parser: parse a prefix term, then
// repeatedly fold in infix/postfix operators whose precedence exceeds the
// caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for !p.peekIs(lexer.SEMI) && precedence < p.peekPrecedence() {
		if p.peekIs(lexer.QUOTE) {
			p.nextToken()
			t := &ast.Transpose{Expr: left}
			t.Pos = p.curToken.Pos
			left = t
			continue
		}
		p.nextToken()
		left = p.parseInfix(left)
	}

	return left
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.curToken.Type {
	case lexer.INTNUM:
		return p.parseIntNum()
	case lexer.FLOATNUM:
		return p.parseFloatNum()
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.IDENT:
		return p.parseVariable()
	case lexer.LPAREN:
		return p.parseGrouped()
	case lexer.MINUS:
		return p.parseNegation()
	case lexer.LBRACK:
		return p.parseTensorLiteral()
	case lexer.ZEROS, lexer.ONES, lexer.EYE:
		return p.parseFunctionCall()
	default:
		p.errorf("unexpected token %s in expression", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseInfix(left ast.Expr) ast.Expr {
	op, ok := binOps[p.curToken.Type]
	if !ok {
		p.errorf("unexpected operator %s", p.curToken.Type)
		return nil
	}
	pos := p.curToken.Pos
	opPrecedence := precedences[p.curToken.Type]
	p.nextToken()
	right := p.parseExpression(opPrecedence)

	be := &ast.BinExpr{Op: op, Left: left, Right: right}
	be.Pos = pos
	return be
}

func (p *Parser) parseIntNum() ast.Expr {
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", p.curToken.Literal)
		return nil
	}
	n := &ast.IntNum{Value: v}
	n.Pos = p.curToken.Pos
	return n
}

func (p *Parser) parseFloatNum() ast.Expr {
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf("invalid float literal %q", p.curToken.Literal)
		return nil
	}
	n := &ast.FloatNum{Value: v}
	n.Pos = p.curToken.Pos
	return n
}

func (p *Parser) parseStringLiteral() ast.Expr {
	s := &ast.StringLiteral{Value: p.curToken.Literal}
	s.Pos = p.curToken.Pos
	return s
}

func (p *Parser) parseVariable() ast.Expr {
	pos := p.curToken.Pos
	name := p.curToken.Literal

	var idx *ast.Index
	if p.peekIs(lexer.LBRACK) {
		p.nextToken()
		idxPos := p.curToken.Pos
		p.nextToken()
		elems := []ast.Expr{p.parseExpression(LOWEST)}
		for p.peekIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			elems = append(elems, p.parseExpression(LOWEST))
		}
		if !p.expect(lexer.RBRACK) {
			return nil
		}
		idx = &ast.Index{Elements: elems}
		idx.Pos = idxPos
	}

	v := &ast.Variable{Name: name, Index: idx}
	v.Pos = pos
	return v
}

func (p *Parser) parseGrouped() ast.Expr {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseNegation() ast.Expr {
	pos := p.curToken.Pos
	p.nextToken()
	expr := p.parseExpression(UNARY)
	n := &ast.Negation{Expr: expr}
	n.Pos = pos
	return n
}

func (p *Parser) parseTensorLiteral() ast.Expr {
	pos := p.curToken.Pos
	p.nextToken()

	var rows []ast.Expr
	if !p.curIs(lexer.RBRACK) {
		rows = append(rows, p.parseExpression(LOWEST))
		for p.peekIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			rows = append(rows, p.parseExpression(LOWEST))
		}
		if !p.expect(lexer.RBRACK) {
			return nil
		}
	}

	t := &ast.TensorLiteral{Rows: rows}
	t.Pos = pos
	return t
}

func (p *Parser) parseFunctionCall() ast.Expr {
	pos := p.curToken.Pos
	name := builtinFuncs[p.curToken.Type]

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextToken()

	var args []ast.Expr
	if !p.curIs(lexer.RPAREN) {
		args = append(args, p.parseExpression(LOWEST))
		for p.peekIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			args = append(args, p.parseExpression(LOWEST))
		}
		if !p.expect(lexer.RPAREN) {
			return nil
		}
	}

	tuple := &ast.Tuple{Args: args}
	tuple.Pos = pos

	fn := &ast.Function{Name: name, Args: tuple}
	fn.Pos = pos
	return fn
}
