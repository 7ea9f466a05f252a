package interp

import "github.com/cwbudde/go-mscript/internal/ast"

// Eval evaluates an expression to a Value, or to an *ErrorValue on a
// runtime failure - callers propagate an error result immediately rather
// than continuing the walk (spec §2.3's error-as-value style).
func (in *Interpreter) Eval(e ast.Expr) Value {
	switch n := e.(type) {
	case *ast.IntNum:
		return IntegerValue(n.Value)
	case *ast.FloatNum:
		return FloatValue(n.Value)
	case *ast.StringLiteral:
		return StringValue(n.Value)
	case *ast.TensorLiteral:
		return in.evalTensorLiteral(n)
	case *ast.Variable:
		return in.evalVariable(n)
	case *ast.BinExpr:
		return in.evalBinExpr(n)
	case *ast.Transpose:
		return in.evalTranspose(n)
	case *ast.Negation:
		return in.evalNegation(n)
	case *ast.Function:
		return in.evalFunction(n)
	default:
		return newError(e.Line(), "unsupported expression")
	}
}

func (in *Interpreter) evalVariable(n *ast.Variable) Value {
	base, ok := in.mem.Get(n.Name)
	if !ok {
		return newError(n.Line(), "name '%s' is not defined", n.Name)
	}
	if n.Index == nil {
		return base
	}

	idx, errVal := in.evalIndex(n.Index)
	if errVal != nil {
		return errVal
	}

	tensor, ok := base.(*TensorValue)
	if !ok {
		return newError(n.Line(), "'%s' is not indexable", n.Name)
	}
	v, ok := tensor.slice(idx)
	if !ok {
		return newError(n.Line(), "index out of bounds for '%s'", n.Name)
	}
	return v
}

// evalIndex evaluates every subscript expression to an int coordinate.
// Non-int index elements are a runtime error (spec §7's IndexKindInvalid);
// the checker already rejects them statically, so this only fires on
// pathological input the checker let through.
func (in *Interpreter) evalIndex(idx *ast.Index) ([]int, *ErrorValue) {
	out := make([]int, len(idx.Elements))
	for i, elemExpr := range idx.Elements {
		v := in.Eval(elemExpr)
		if errVal, ok := v.(*ErrorValue); ok {
			return nil, errVal
		}
		iv, ok := v.(IntegerValue)
		if !ok {
			return nil, newError(elemExpr.Line(), "index must be an integer")
		}
		out[i] = int(iv)
	}
	return out, nil
}

func (in *Interpreter) evalTranspose(n *ast.Transpose) Value {
	v := in.Eval(n.Expr)
	if isError(v) {
		return v
	}
	t, ok := v.(*TensorValue)
	if !ok {
		return newError(n.Line(), "cannot transpose a scalar")
	}
	return t.transpose()
}

func (in *Interpreter) evalNegation(n *ast.Negation) Value {
	v := in.Eval(n.Expr)
	if isError(v) {
		return v
	}
	switch x := v.(type) {
	case IntegerValue:
		return -x
	case FloatValue:
		return -x
	default:
		return newError(n.Line(), "cannot negate a non-numeric value")
	}
}

func (in *Interpreter) evalFunction(n *ast.Function) Value {
	args, errVal := in.evalIntArgs(n.Args)
	if errVal != nil {
		return errVal
	}

	switch n.Name {
	case ast.FuncZeros:
		return newTensor(args, "int")
	case ast.FuncOnes:
		return onesFilled(args)
	case ast.FuncEye:
		// Per spec §9's open question, eye forwards only the first argument
		// at runtime; the checker still validates every argument.
		if len(args) == 0 {
			return newError(n.Line(), "eye requires at least one argument")
		}
		return eye(args[0])
	default:
		return newError(n.Line(), "unknown function '%s'", n.Name)
	}
}

func (in *Interpreter) evalIntArgs(t *ast.Tuple) ([]int, *ErrorValue) {
	out := make([]int, len(t.Args))
	for i, arg := range t.Args {
		v := in.Eval(arg)
		if errVal, ok := v.(*ErrorValue); ok {
			return nil, errVal
		}
		iv, ok := v.(IntegerValue)
		if !ok {
			return nil, newError(arg.Line(), "expected an integer argument")
		}
		out[i] = int(iv)
	}
	return out, nil
}

func (in *Interpreter) evalTensorLiteral(n *ast.TensorLiteral) Value {
	if len(n.Rows) == 0 {
		return newTensor([]int{0}, "int")
	}

	rowVals := make([]Value, len(n.Rows))
	for i, row := range n.Rows {
		v := in.Eval(row)
		if isError(v) {
			return v
		}
		rowVals[i] = v
	}

	// Scalar elements: a rank-1 vector of int or float.
	if _, ok := rowVals[0].(*TensorValue); !ok {
		dtype := "int"
		data := make([]float64, len(rowVals))
		for i, v := range rowVals {
			f, numeric := asNumber(v)
			if !numeric {
				return newError(n.Line(), "tensor elements must be numeric")
			}
			if v.Type() == "float" {
				dtype = "float"
			}
			data[i] = f
		}
		out := newTensor([]int{len(data)}, dtype)
		copy(out.Data, data)
		return out
	}

	// Rank-2: each row is itself a rank-1 tensor, all the same length.
	first := rowVals[0].(*TensorValue)
	dtype := first.Dtype
	for _, v := range rowVals {
		if t, ok := v.(*TensorValue); ok && t.Dtype == "float" {
			dtype = "float"
		}
	}

	cols := first.Shape[0]
	out := newTensor([]int{len(rowVals), cols}, dtype)
	for r, v := range rowVals {
		t := v.(*TensorValue)
		copy(out.Data[r*cols:(r+1)*cols], t.Data)
	}
	return out
}
