// Package ast defines the tagged tree that the checker and evaluator walk.
// Node variants are immutable once built by the parser; only structure, not
// identity, is meaningful.
package ast

import "github.com/cwbudde/go-mscript/internal/lexer"

// Node is implemented by every AST variant. Line returns the 1-based source
// line attached at parse time (0 if never set).
type Node interface {
	Line() int
	node()
}

// Expr is a Node that produces exactly one runtime value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node executed for its side effects.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source file: a single Instructions block.
type Program struct {
	Body *Instructions
}

func (p *Program) Line() int { return 0 }
func (p *Program) node()     {}

// pos is embedded by every concrete node to carry its source position and
// satisfy Node.Line().
type pos struct {
	Pos lexer.Position
}

func (p pos) Line() int { return p.Pos.Line }
func (pos) node()       {}
