package semantic

import "github.com/cwbudde/go-mscript/internal/ast"

// visitInstructions walks a statement list in the current scope, without
// pushing a new one - callers that need a fresh scope (loops, branches,
// bare blocks) push it themselves before calling this.
func (a *Analyzer) visitInstructions(list *ast.Instructions) {
	for _, stmt := range list.List {
		a.visitStmt(stmt)
	}
}

func (a *Analyzer) visitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Assignment:
		a.visitAssignment(n)
	case *ast.ForLoop:
		a.visitForLoop(n)
	case *ast.While:
		a.visitWhile(n)
	case *ast.IfElse:
		a.visitIfElse(n)
	case *ast.Print:
		a.visitTuple(n.Args)
	case *ast.Controlflow:
		a.visitControlflow(n)
	case *ast.Scope:
		a.scope = a.scope.enter("block")
		a.visitInstructions(n.Body)
		a.scope = a.scope.exit()
	case *ast.Instructions:
		a.visitInstructions(n)
	default:
		a.reportf(s.Line(), "unsupported statement")
	}
}

func (a *Analyzer) visitAssignment(n *ast.Assignment) {
	var rhs Descriptor

	if n.Op == ast.AssignSet {
		rhs = a.visitExpr(n.Expr)
		// Indexed write: validate the target's index arity/bounds the same
		// way a read would be, but keep the binding itself unchanged below.
		if n.Target.Index != nil {
			a.visitVariable(n.Target)
		}
	} else {
		if a.scope.get(n.Target.Name) == nil {
			a.reportf(n.Line(), "Variable referenced before assignment")
		}
		synthetic := &ast.BinExpr{Op: n.Op.BaseOp(), Left: n.Target, Right: n.Expr}
		synthetic.Pos = n.Target.Pos
		rhs = a.visitBinExpr(synthetic)
	}

	if n.Target.Index == nil {
		a.scope.put(n.Target.Name, rhs)
	}
}

func (a *Analyzer) visitForLoop(n *ast.ForLoop) {
	a.visitRange(n.Range)

	a.scope = a.scope.enter("for")
	a.scope.put(n.Var, scalar(TInt, nil))
	a.visitStmt(n.Body)
	a.scope = a.scope.exit()
}

func (a *Analyzer) visitWhile(n *ast.While) {
	cond := a.visitExpr(n.Cond)
	if cond.IsTensor() || cond.Type != TInt {
		a.reportf(n.Line(), "while condition must be an int scalar")
	}

	a.scope = a.scope.enter("while")
	a.visitStmt(n.Body)
	a.scope = a.scope.exit()
}

func (a *Analyzer) visitIfElse(n *ast.IfElse) {
	cond := a.visitExpr(n.Cond)
	if cond.IsTensor() || cond.Type != TInt {
		a.reportf(n.Line(), "if condition must be an int scalar")
	}

	a.scope = a.scope.enter("then")
	a.visitStmt(n.Then)
	a.scope = a.scope.exit()

	if n.Else != nil {
		a.scope = a.scope.enter("else")
		a.visitStmt(n.Else)
		a.scope = a.scope.exit()
	}
}

func (a *Analyzer) visitControlflow(n *ast.Controlflow) {
	switch n.Command {
	case ast.CFBreak, ast.CFContinue:
		if !a.inLoopScope() {
			a.reportf(n.Line(), "%s used outside of a loop", n.Command)
		}
	case ast.CFReturn:
		if n.RetVal != nil {
			a.visitExpr(n.RetVal)
		}
	}
}

// inLoopScope reports whether the current scope is nested (directly or
// through if/else/block frames) inside a for/while scope.
func (a *Analyzer) inLoopScope() bool {
	for s := a.scope; s != nil; s = s.parent {
		if s.isLoopScope() {
			return true
		}
	}
	return false
}
