// Package parser implements a hand-written recursive-descent / Pratt parser
// that turns a token stream from internal/lexer into the internal/ast tree
// described by spec §3.3.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-mscript/internal/ast"
	"github.com/cwbudde/go-mscript/internal/lexer"
)

// precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	COMPARE  // == != < > <= >=
	SUM      // + - .+ .-
	PRODUCT  // * / .* ./
	UNARY    // unary -
	POSTFIX  // '
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:       COMPARE,
	lexer.NOTEQ:    COMPARE,
	lexer.LT:       COMPARE,
	lexer.GT:       COMPARE,
	lexer.LE:       COMPARE,
	lexer.GE:       COMPARE,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.DOTPLUS:  SUM,
	lexer.DOTMINUS: SUM,
	lexer.STAR:     PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.DOTSTAR:  PRODUCT,
	lexer.DOTSLASH: PRODUCT,
	lexer.QUOTE:    POSTFIX,
}

var binOps = map[lexer.TokenType]ast.BinOp{
	lexer.PLUS:     ast.OpAdd,
	lexer.MINUS:    ast.OpSub,
	lexer.STAR:     ast.OpMul,
	lexer.SLASH:    ast.OpDiv,
	lexer.DOTPLUS:  ast.OpDAdd,
	lexer.DOTMINUS: ast.OpDSub,
	lexer.DOTSTAR:  ast.OpDMul,
	lexer.DOTSLASH: ast.OpDDiv,
	lexer.EQ:       ast.OpEq,
	lexer.NOTEQ:    ast.OpNotEq,
	lexer.LT:       ast.OpLt,
	lexer.GT:       ast.OpGt,
	lexer.LE:       ast.OpLe,
	lexer.GE:       ast.OpGe,
}

var assignOps = map[lexer.TokenType]ast.AssignOp{
	lexer.ASSIGN:    ast.AssignSet,
	lexer.ADDASSIGN: ast.AssignAdd,
	lexer.SUBASSIGN: ast.AssignSub,
	lexer.MULASSIGN: ast.AssignMul,
	lexer.DIVASSIGN: ast.AssignDiv,
}

// Parser consumes tokens from a Lexer and produces an *ast.Program.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []string
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the syntax errors collected while parsing.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("Syntax error at line %d: %s", p.curToken.Pos.Line, msg))
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expect checks the peek token, advances past it if it matches, and records
// a syntax error otherwise.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected next token to be %s, got %s instead", t, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	body := p.parseInstructions(lexer.EOF)
	return &ast.Program{Body: body}
}

// parseInstructions parses statements until it sees `until` (lexer.EOF for
// top level, lexer.RBRACE for a `{ ... }` block) without consuming it.
func (p *Parser) parseInstructions(until lexer.TokenType) *ast.Instructions {
	instr := &ast.Instructions{}
	instr.Pos = p.curToken.Pos

	for !p.curIs(until) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			instr.List = append(instr.List, stmt)
		}
		p.nextToken()
	}
	return instr
}
