package interp

import "github.com/cwbudde/go-mscript/internal/ast"

func (in *Interpreter) execAssignment(n *ast.Assignment) Value {
	if n.Target.Index != nil {
		return in.execIndexedAssignment(n)
	}

	if n.Op == ast.AssignSet {
		rhs := in.Eval(n.Expr)
		if isError(rhs) {
			return rhs
		}
		in.mem.Set(n.Target.Name, rhs)
		return NilValue{}
	}

	current, ok := in.mem.Get(n.Target.Name)
	if !ok {
		return newError(n.Line(), "name '%s' is not defined", n.Target.Name)
	}
	rhs := in.Eval(n.Expr)
	if isError(rhs) {
		return rhs
	}
	result := applyScalarOp(n.Op.BaseOp(), current, rhs, n.Line())
	if isError(result) {
		return result
	}
	in.mem.Set(n.Target.Name, result)
	return NilValue{}
}

func (in *Interpreter) execIndexedAssignment(n *ast.Assignment) Value {
	base, ok := in.mem.Get(n.Target.Name)
	if !ok {
		return newError(n.Line(), "name '%s' is not defined", n.Target.Name)
	}
	tensor, ok := base.(*TensorValue)
	if !ok {
		return newError(n.Line(), "'%s' is not indexable", n.Target.Name)
	}

	idx, errVal := in.evalIndex(n.Target.Index)
	if errVal != nil {
		return errVal
	}
	if len(idx) != len(tensor.Shape) {
		return newError(n.Line(), "partial indexed assignment is not supported")
	}

	rhs := in.Eval(n.Expr)
	if isError(rhs) {
		return rhs
	}

	newVal := rhs
	if n.Op != ast.AssignSet {
		old, ok := tensor.slice(idx)
		if !ok {
			return newError(n.Line(), "index out of bounds for '%s'", n.Target.Name)
		}
		newVal = applyScalarOp(n.Op.BaseOp(), old, rhs, n.Line())
		if isError(newVal) {
			return newVal
		}
	}

	f, numeric := asNumber(newVal)
	if !numeric {
		return newError(n.Line(), "cannot assign a non-numeric value into a tensor")
	}
	if !tensor.setSlice(idx, f) {
		return newError(n.Line(), "index out of bounds for '%s'", n.Target.Name)
	}
	if newVal.Type() == "float" {
		tensor.Dtype = "float"
	}
	return NilValue{}
}
