package parser

import (
	"github.com/cwbudde/go-mscript/internal/ast"
	"github.com/cwbudde/go-mscript/internal/lexer"
)

// parseStatement parses one statement. On return, curToken sits on the last
// token of the statement (a ';' for simple statements, a closing '}' for
// blocks, or the last token of a nested compound statement for loops/ifs) so
// that the caller's own p.nextToken() advances cleanly to the next one.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Type {
	case lexer.FOR:
		return p.parseForLoop()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.IF:
		return p.parseIfElse()
	case lexer.LBRACE:
		return p.parseScope()
	case lexer.BREAK, lexer.CONTINUE, lexer.RETURN:
		stmt := p.parseControlflow()
		p.expect(lexer.SEMI)
		return stmt
	case lexer.PRINT:
		stmt := p.parsePrint()
		p.expect(lexer.SEMI)
		return stmt
	case lexer.IDENT:
		stmt := p.parseAssignment()
		p.expect(lexer.SEMI)
		return stmt
	default:
		p.errorf("unexpected token %s", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseAssignment() ast.Stmt {
	pos := p.curToken.Pos
	name := p.curToken.Literal

	var idx *ast.Index
	if p.peekIs(lexer.LBRACK) {
		p.nextToken() // consume '['
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

	target := &ast.Variable{Name: name, Index: idx}
	target.Pos = pos

	p.nextToken() // move onto the assignment operator
	op, ok := assignOps[p.curToken.Type]
	if !ok {
		p.errorf("expected an assignment operator, got %s", p.curToken.Type)
		return nil
	}

	p.nextToken() // move onto the start of the rhs expression
	expr := p.parseExpression(LOWEST)

	assign := &ast.Assignment{Target: target, Op: op, Expr: expr}
	assign.Pos = pos
	return assign
}

func (p *Parser) parseForLoop() ast.Stmt {
	pos := p.curToken.Pos
	if !p.expect(lexer.IDENT) {
		return nil
	}
	varName := p.curToken.Literal

	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	rangePos := p.curToken.Pos
	p.nextToken()
	start := p.parseExpression(LOWEST)

	if !p.expect(lexer.COLON) {
		return nil
	}
	p.nextToken()
	end := p.parseExpression(LOWEST)

	rng := &ast.Range{Start: start, End: end}
	rng.Pos = rangePos

	p.nextToken()
	body := p.parseStatement()

	loop := &ast.ForLoop{Var: varName, Range: rng, Body: body}
	loop.Pos = pos
	return loop
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.curToken.Pos
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expect(lexer.RPAREN) {
		return nil
	}

	p.nextToken()
	body := p.parseStatement()

	w := &ast.While{Cond: cond, Body: body}
	w.Pos = pos
	return w
}

func (p *Parser) parseIfElse() ast.Stmt {
	pos := p.curToken.Pos
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expect(lexer.RPAREN) {
		return nil
	}

	p.nextToken()
	thenStmt := p.parseStatement()

	var elseStmt ast.Stmt
	if p.peekIs(lexer.ELSE) {
		p.nextToken()
		p.nextToken()
		elseStmt = p.parseStatement()
	}

	ifElse := &ast.IfElse{Cond: cond, Then: thenStmt, Else: elseStmt}
	ifElse.Pos = pos
	return ifElse
}

func (p *Parser) parseScope() ast.Stmt {
	pos := p.curToken.Pos
	p.nextToken()
	body := p.parseInstructions(lexer.RBRACE)

	scope := &ast.Scope{Body: body}
	scope.Pos = pos
	return scope
}

func (p *Parser) parseControlflow() ast.Stmt {
	pos := p.curToken.Pos
	var cmd ast.CFCommand
	switch p.curToken.Type {
	case lexer.BREAK:
		cmd = ast.CFBreak
	case lexer.CONTINUE:
		cmd = ast.CFContinue
	case lexer.RETURN:
		cmd = ast.CFReturn
	}

	var retVal ast.Expr
	if cmd == ast.CFReturn && !p.peekIs(lexer.SEMI) {
		p.nextToken()
		retVal = p.parseExpression(LOWEST)
	}

	cf := &ast.Controlflow{Command: cmd, RetVal: retVal}
	cf.Pos = pos
	return cf
}

func (p *Parser) parsePrint() ast.Stmt {
	pos := p.curToken.Pos
	p.nextToken()
	args := []ast.Expr{p.parseExpression(LOWEST)}
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	tuple := &ast.Tuple{Args: args}
	tuple.Pos = pos

	pr := &ast.Print{Args: tuple}
	pr.Pos = pos
	return pr
}
