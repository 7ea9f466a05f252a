package interp

import (
	"io"

	"github.com/cwbudde/go-mscript/internal/ast"
)

// Signal identifies a pending non-local control transfer (spec §9's design
// note: an explicit escape register on the evaluator, in place of the
// source's exceptions).
type Signal int

const (
	SigNone Signal = iota
	SigBreak
	SigContinue
	SigReturn
)

// Interpreter is the recursive tree-walking evaluator of spec §4.5. Exec
// methods set signal/returnVal instead of unwinding the Go call stack;
// every loop and block checks signal after running a child statement and
// stops early when one is pending, then (for break/continue) consumes it at
// the frame that owns it.
type Interpreter struct {
	mem       *Environment
	out       io.Writer
	signal    Signal
	returnVal Value
}

// New creates an Interpreter writing Print output to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{mem: NewEnvironment(), out: out}
}

// Run executes program's top-level Instructions and returns the process
// exit code, applying the algorithm of SPEC_FULL.md §4 (return value nil or
// 0 -> 0; non-int -> print then -1; else -> the int value). A runtime error
// reaching the top returns exit code 1 after the caller prints it via the
// returned *ErrorValue.
func (in *Interpreter) Run(program *ast.Program) (int, *ErrorValue) {
	result := in.execInstructions(program.Body)
	if errVal, ok := result.(*ErrorValue); ok {
		return 1, errVal
	}

	if in.signal != SigReturn {
		return 0, nil
	}

	switch v := in.returnVal.(type) {
	case nil:
		return 0, nil
	case NilValue:
		return 0, nil
	case IntegerValue:
		return int(v), nil
	default:
		in.print([]Value{v})
		return -1, nil
	}
}

func (in *Interpreter) print(vals []Value) {
	io.WriteString(in.out, joinStrings(vals, " "))
	io.WriteString(in.out, "\n")
}

// execInstructions runs a statement list in the current frame, stopping as
// soon as a runtime error or pending signal appears.
func (in *Interpreter) execInstructions(list *ast.Instructions) Value {
	for _, stmt := range list.List {
		result := in.execStmt(stmt)
		if isError(result) {
			return result
		}
		if in.signal != SigNone {
			return NilValue{}
		}
	}
	return NilValue{}
}

func (in *Interpreter) execStmt(s ast.Stmt) Value {
	switch n := s.(type) {
	case *ast.Assignment:
		return in.execAssignment(n)
	case *ast.ForLoop:
		return in.execForLoop(n)
	case *ast.While:
		return in.execWhile(n)
	case *ast.IfElse:
		return in.execIfElse(n)
	case *ast.Print:
		return in.execPrint(n)
	case *ast.Controlflow:
		return in.execControlflow(n)
	case *ast.Scope:
		in.mem.Push("block")
		result := in.execInstructions(n.Body)
		in.mem.Pop()
		return result
	case *ast.Instructions:
		return in.execInstructions(n)
	default:
		return newError(s.Line(), "unsupported statement")
	}
}

func (in *Interpreter) execPrint(n *ast.Print) Value {
	vals := make([]Value, len(n.Args.Args))
	for i, arg := range n.Args.Args {
		v := in.Eval(arg)
		if isError(v) {
			return v
		}
		vals[i] = v
	}
	in.print(vals)
	return NilValue{}
}

func (in *Interpreter) execControlflow(n *ast.Controlflow) Value {
	switch n.Command {
	case ast.CFBreak:
		in.signal = SigBreak
	case ast.CFContinue:
		in.signal = SigContinue
	case ast.CFReturn:
		if n.RetVal != nil {
			v := in.Eval(n.RetVal)
			if isError(v) {
				return v
			}
			in.returnVal = v
		} else {
			in.returnVal = NilValue{}
		}
		in.signal = SigReturn
	}
	return NilValue{}
}

func (in *Interpreter) execWhile(n *ast.While) Value {
	in.mem.Push("while")
	defer in.mem.Pop()

	for {
		cond := in.Eval(n.Cond)
		if isError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			break
		}

		result := in.execStmt(n.Body)
		if isError(result) {
			return result
		}
		if in.signal == SigBreak {
			in.signal = SigNone
			break
		}
		if in.signal == SigContinue {
			in.signal = SigNone
			continue
		}
		if in.signal != SigNone {
			return NilValue{}
		}
	}
	return NilValue{}
}

func (in *Interpreter) execForLoop(n *ast.ForLoop) Value {
	start := in.Eval(n.Range.Start)
	if isError(start) {
		return start
	}
	end := in.Eval(n.Range.End)
	if isError(end) {
		return end
	}

	startI, ok1 := start.(IntegerValue)
	endI, ok2 := end.(IntegerValue)
	if !ok1 || !ok2 {
		return newError(n.Line(), "for range bounds must be integers")
	}

	in.mem.Push("for")
	defer in.mem.Pop()

	for i := int64(startI); i < int64(endI); i++ {
		in.mem.Set(n.Var, IntegerValue(i))

		result := in.execStmt(n.Body)
		if isError(result) {
			return result
		}
		if in.signal == SigBreak {
			in.signal = SigNone
			break
		}
		if in.signal == SigContinue {
			in.signal = SigNone
			continue
		}
		if in.signal != SigNone {
			return NilValue{}
		}
	}
	return NilValue{}
}

func (in *Interpreter) execIfElse(n *ast.IfElse) Value {
	cond := in.Eval(n.Cond)
	if isError(cond) {
		return cond
	}

	if isTruthy(cond) {
		in.mem.Push("then")
		defer in.mem.Pop()
		return in.execStmt(n.Then)
	}
	if n.Else != nil {
		in.mem.Push("else")
		defer in.mem.Pop()
		return in.execStmt(n.Else)
	}
	return NilValue{}
}
