package semantic

import "github.com/cwbudde/go-mscript/internal/ast"

// visitExpr dispatches on the concrete expression node type, implementing
// spec §4.4's per-node rules. It never fails hard: on a local error it still
// returns a plausible descriptor so the walk can continue.
func (a *Analyzer) visitExpr(e ast.Expr) Descriptor {
	switch n := e.(type) {
	case *ast.IntNum:
		return scalar(TInt, n.Value)
	case *ast.FloatNum:
		return scalar(TFloat, n.Value)
	case *ast.StringLiteral:
		return scalar(TStr, n.Value)
	case *ast.TensorLiteral:
		return a.visitTensorLiteral(n)
	case *ast.Variable:
		return a.visitVariable(n)
	case *ast.BinExpr:
		return a.visitBinExpr(n)
	case *ast.Transpose:
		return a.visitTranspose(n)
	case *ast.Negation:
		return a.visitNegation(n)
	case *ast.Function:
		return a.visitFunction(n)
	case *ast.Range:
		a.visitRange(n)
		return scalar(TInt, nil)
	default:
		return unknownDescriptor()
	}
}

// visitTuple returns the parallel type/shape lists for a Tuple's arguments.
func (a *Analyzer) visitTuple(t *ast.Tuple) []Descriptor {
	descs := make([]Descriptor, len(t.Args))
	for i, arg := range t.Args {
		descs[i] = a.visitExpr(arg)
	}
	return descs
}

func (a *Analyzer) visitVariable(n *ast.Variable) Descriptor {
	sym := a.scope.get(n.Name)
	if sym == nil {
		a.reportf(n.Line(), "Variable referenced before assignment")
		return unknownDescriptor()
	}

	desc := sym.Desc
	if n.Index == nil {
		return desc
	}

	if !desc.IsTensor() {
		a.reportf(n.Line(), "Scalar value does not support indexing")
		return unknownDescriptor()
	}
	if len(n.Index.Elements) > len(desc.Shape) {
		a.reportf(n.Line(), "Index is bigger than %s shape", n.Name)
		return unknownDescriptor()
	}

	for i, idxExpr := range n.Index.Elements {
		idxDesc := a.visitExpr(idxExpr)
		if idxDesc.Type != TInt {
			a.reportf(n.Line(), "Index should be integer number")
		}
		if idxDesc.IsTensor() {
			a.reportf(n.Line(), "Vector or matrix can't be used as index")
		}
		if lit, ok := idxExpr.(*ast.IntNum); ok && desc.Shape[i] != UnknownDim {
			if int64(desc.Shape[i]) <= lit.Value {
				a.reportf(n.Line(), "%d index out of %s shape %s", lit.Value, n.Name, desc.Shape)
			}
		}
	}

	if len(n.Index.Elements) == len(desc.Shape) {
		return scalar(desc.Type, nil)
	}
	return tensor(desc.Type, desc.Shape[len(n.Index.Elements):])
}

func (a *Analyzer) visitBinExpr(n *ast.BinExpr) Descriptor {
	left := a.visitExpr(n.Left)
	right := a.visitExpr(n.Right)

	switch {
	case left.IsTensor() && right.IsTensor():
		return a.checkTensorOp(n, left, right)
	case left.IsTensor() && !right.IsTensor():
		a.reportf(n.Line(), "Can't add tensor to scalar")
		return left
	case right.IsTensor() && !left.IsTensor():
		a.reportf(n.Line(), "Can't add scalar to tensor")
		return left
	default:
		return a.checkScalarOp(n, left, right)
	}
}

var tensorOps = map[ast.BinOp]bool{
	ast.OpDAdd: true, ast.OpDSub: true, ast.OpDMul: true, ast.OpDDiv: true,
}

var scalarOps = map[ast.BinOp]bool{
	ast.OpAdd: true, ast.OpSub: true, ast.OpMul: true, ast.OpDiv: true,
	ast.OpLt: true, ast.OpGt: true, ast.OpEq: true, ast.OpNotEq: true,
	ast.OpGe: true, ast.OpLe: true,
}

func shapesCompatible(a, b Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != UnknownDim && b[i] != UnknownDim && a[i] != b[i] {
			return false
		}
	}
	return true
}

func (a *Analyzer) checkTensorOp(n *ast.BinExpr, left, right Descriptor) Descriptor {
	if !shapesCompatible(left.Shape, right.Shape) {
		a.reportf(n.Line(), "tensors of incompatible shapes")
	}
	if !tensorOps[n.Op] {
		a.reportf(n.Line(), "%s does not support tensor operations", n.Op)
		return left
	}
	t, ok := promote(left.Type, right.Type)
	if !ok {
		a.reportf(n.Line(), "Can't perform %s on (%s, %s), incompatible types", n.Op, left.Type, right.Type)
		return left
	}
	return tensor(t, left.Shape)
}

func (a *Analyzer) checkScalarOp(n *ast.BinExpr, left, right Descriptor) Descriptor {
	if !scalarOps[n.Op] {
		a.reportf(n.Line(), "%s does not support scalar operations", n.Op)
		return left
	}

	if n.Op == ast.OpAdd && left.Type == TStr && right.Type == TStr {
		return scalar(TStr, nil)
	}

	switch n.Op {
	case ast.OpLt, ast.OpGt, ast.OpEq, ast.OpNotEq, ast.OpGe, ast.OpLe:
		if left.Type == TStr || right.Type == TStr {
			a.reportf(n.Line(), "Can't perform %s on (%s, %s), incompatible types", n.Op, left.Type, right.Type)
			return left
		}
		return scalar(TInt, nil)
	default:
		t, ok := promote(left.Type, right.Type)
		if !ok {
			a.reportf(n.Line(), "Can't perform %s on (%s, %s), incompatible types", n.Op, left.Type, right.Type)
			return left
		}
		return scalar(t, nil)
	}
}

func (a *Analyzer) visitTranspose(n *ast.Transpose) Descriptor {
	operand := a.visitExpr(n.Expr)
	if !operand.IsTensor() {
		a.reportf(n.Line(), "Can only transpose a tensor")
		return operand
	}

	var newShape Shape
	if len(operand.Shape) == 1 {
		newShape = Shape{1, operand.Shape[0]}
	} else {
		newShape = Shape{operand.Shape[1], operand.Shape[0]}
	}
	return tensor(operand.Type, newShape)
}

func (a *Analyzer) visitNegation(n *ast.Negation) Descriptor {
	operand := a.visitExpr(n.Expr)
	if operand.IsTensor() {
		a.reportf(n.Line(), "Negation does not support tensors")
	}
	if operand.Type != TInt && operand.Type != TFloat {
		a.reportf(n.Line(), "Negation does not support non-numeric values")
	}
	return operand
}

func (a *Analyzer) visitFunction(n *ast.Function) Descriptor {
	descs := a.visitTuple(n.Args)

	shape := make(Shape, len(descs))
	for i, d := range descs {
		if d.IsTensor() {
			a.reportf(n.Line(), "expected int numbers in arguments, got tensor")
			shape[i] = UnknownDim
			continue
		}
		if d.Type != TInt {
			a.reportf(n.Line(), "expected int numbers in arguments, got %s", d.Type)
			shape[i] = UnknownDim
			continue
		}
		if lit, ok := d.Value.(int64); ok {
			shape[i] = int(lit)
		} else {
			shape[i] = UnknownDim
		}
	}

	return tensor(TInt, shape)
}

func (a *Analyzer) visitRange(n *ast.Range) {
	start := a.visitExpr(n.Start)
	end := a.visitExpr(n.End)

	if start.Type != TInt || end.Type != TInt {
		a.reportf(n.Line(), "Range operator accepts (int, int), got (%s, %s)", start.Type, end.Type)
	}
	if start.IsTensor() || end.IsTensor() {
		a.reportf(n.Line(), "Range operator only works with scalar values")
	}
}

func (a *Analyzer) visitTensorLiteral(n *ast.TensorLiteral) Descriptor {
	if len(n.Rows) == 0 {
		return tensor(TInt, Shape{0})
	}

	var dtype BaseType
	var elemShape Shape
	mismatchShape := false
	mismatchType := false
	sawFloat := false
	sawOther := false

	for i, row := range n.Rows {
		d := a.visitExpr(row)
		t := d.Type
		if t == TFloat {
			sawFloat = true
		} else if t != TInt {
			sawOther = true
			dtype = t
		}

		var s Shape
		if d.IsTensor() {
			s = d.Shape
		}
		if i == 0 {
			elemShape = s
			if t == TInt || t == TFloat {
				dtype = TFloat
				if t == TInt && !sawFloat {
					dtype = TInt
				}
			}
		} else if !shapeEqual(s, elemShape) {
			mismatchShape = true
		}
	}

	if sawOther {
		mismatchType = true
	} else if sawFloat {
		dtype = TFloat
	} else {
		dtype = TInt
	}

	if mismatchType {
		a.reportf(n.Line(), "Can only keep elements of the same type")
	}
	if mismatchShape {
		a.reportf(n.Line(), "Dimensions should be of the same shape")
	}

	shape := append(Shape{len(n.Rows)}, elemShape...)
	return tensor(dtype, shape)
}

func shapeEqual(a, b Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
