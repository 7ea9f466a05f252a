package interp

import "github.com/cwbudde/go-mscript/internal/ast"

// scalarArith maps a scalar operator to the float64 function that
// implements it (spec §4.5's "fixed mapping from source operator to a
// binary arithmetic or comparison function").
var scalarArith = map[ast.BinOp]func(a, b float64) float64{
	ast.OpAdd:  func(a, b float64) float64 { return a + b },
	ast.OpSub:  func(a, b float64) float64 { return a - b },
	ast.OpMul:  func(a, b float64) float64 { return a * b },
	ast.OpDiv:  func(a, b float64) float64 { return a / b },
	ast.OpDAdd: func(a, b float64) float64 { return a + b },
	ast.OpDSub: func(a, b float64) float64 { return a - b },
	ast.OpDMul: func(a, b float64) float64 { return a * b },
	ast.OpDDiv: func(a, b float64) float64 { return a / b },
}

var scalarCompare = map[ast.BinOp]func(a, b float64) bool{
	ast.OpLt:    func(a, b float64) bool { return a < b },
	ast.OpGt:    func(a, b float64) bool { return a > b },
	ast.OpLe:    func(a, b float64) bool { return a <= b },
	ast.OpGe:    func(a, b float64) bool { return a >= b },
	ast.OpEq:    func(a, b float64) bool { return a == b },
	ast.OpNotEq: func(a, b float64) bool { return a != b },
}

func (in *Interpreter) evalBinExpr(n *ast.BinExpr) Value {
	left := in.Eval(n.Left)
	if isError(left) {
		return left
	}
	right := in.Eval(n.Right)
	if isError(right) {
		return right
	}

	leftT, leftIsTensor := left.(*TensorValue)
	rightT, rightIsTensor := right.(*TensorValue)

	if leftIsTensor && rightIsTensor {
		return in.evalTensorOp(n, leftT, rightT)
	}
	if leftIsTensor != rightIsTensor {
		return newError(n.Line(), "cannot mix tensor and scalar operands")
	}
	return in.evalScalarOp(n, left, right)
}

func (in *Interpreter) evalTensorOp(n *ast.BinExpr, left, right *TensorValue) Value {
	if !left.sameShape(right) {
		return newError(n.Line(), "tensors have incompatible shapes")
	}
	fn, ok := scalarArith[n.Op]
	if !ok {
		return newError(n.Line(), "operator '%s' does not apply to tensors", n.Op)
	}
	return elementWise(left, right, fn)
}

func (in *Interpreter) evalScalarOp(n *ast.BinExpr, left, right Value) Value {
	return applyScalarOp(n.Op, left, right, n.Line())
}

// applyScalarOp is the scalar arithmetic/comparison core, shared by BinExpr
// evaluation and compound-assignment desugaring (spec §4.5's "x = x op rhs").
func applyScalarOp(op ast.BinOp, left, right Value, line int) Value {
	if op == ast.OpAdd {
		if ls, ok := left.(StringValue); ok {
			if rs, ok := right.(StringValue); ok {
				return StringValue(ls.Raw() + rs.Raw())
			}
		}
	}

	lf, lok := asNumber(left)
	rf, rok := asNumber(right)
	if !lok || !rok {
		return newError(line, "operator '%s' does not apply to these operands", op)
	}

	if cmp, ok := scalarCompare[op]; ok {
		if cmp(lf, rf) {
			return IntegerValue(1)
		}
		return IntegerValue(0)
	}

	fn, ok := scalarArith[op]
	if !ok {
		return newError(line, "unsupported operator '%s'", op)
	}

	if op == ast.OpDiv && rf == 0 {
		return newError(line, "division by zero")
	}

	result := fn(lf, rf)
	if left.Type() == "float" || right.Type() == "float" {
		return FloatValue(result)
	}
	return IntegerValue(int64(result))
}
