package interp

import (
	"strconv"
	"strings"
)

// TensorValue is the numeric backend of spec §9: a rectangular, row-major,
// rank-1 or rank-2 array with a uniform element type. Data is always stored
// as float64; Dtype records whether the elements should print and type-check
// as "int" or "float".
type TensorValue struct {
	Shape []int
	Dtype string // "int" or "float"
	Data  []float64
}

// newTensor allocates a zero-filled tensor of the given shape and element
// type (rank 1 or 2, per spec §3.1).
func newTensor(shape []int, dtype string) *TensorValue {
	size := 1
	for _, d := range shape {
		size *= d
	}
	return &TensorValue{Shape: append([]int(nil), shape...), Dtype: dtype, Data: make([]float64, size)}
}

func (t *TensorValue) Type() string { return "tensor" }

func (t *TensorValue) String() string {
	switch len(t.Shape) {
	case 1:
		return "[" + t.rowString(0, t.Shape[0]) + "]"
	case 2:
		rows := make([]string, t.Shape[0])
		cols := t.Shape[1]
		for r := 0; r < t.Shape[0]; r++ {
			rows[r] = "[" + t.rowString(r*cols, cols) + "]"
		}
		return "[" + strings.Join(rows, ", ") + "]"
	default:
		return "[]"
	}
}

func (t *TensorValue) rowString(offset, n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = t.formatElem(t.Data[offset+i])
	}
	return strings.Join(parts, ", ")
}

func (t *TensorValue) formatElem(f float64) string {
	if t.Dtype == "int" {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// strides returns the row-major stride for each dimension.
func (t *TensorValue) strides() []int {
	s := make([]int, len(t.Shape))
	acc := 1
	for i := len(t.Shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= t.Shape[i]
	}
	return s
}

// offset computes the flat Data index for a full-rank coordinate, or -1 if
// any coordinate is out of bounds.
func (t *TensorValue) offset(idx []int) int {
	strides := t.strides()
	off := 0
	for i, d := range idx {
		if d < 0 || d >= t.Shape[i] {
			return -1
		}
		off += d * strides[i]
	}
	return off
}

// slice returns the element (dtype, scalar) when idx covers every
// dimension, or a sub-tensor view (as a fresh copy) over the trailing
// dimensions when idx is a strict prefix of Shape.
func (t *TensorValue) slice(idx []int) (Value, bool) {
	if len(idx) == len(t.Shape) {
		off := t.offset(idx)
		if off < 0 {
			return nil, false
		}
		if t.Dtype == "int" {
			return IntegerValue(int64(t.Data[off])), true
		}
		return FloatValue(t.Data[off]), true
	}

	strides := t.strides()
	off := 0
	for i, d := range idx {
		if d < 0 || d >= t.Shape[i] {
			return nil, false
		}
		off += d * strides[i]
	}
	remShape := append([]int(nil), t.Shape[len(idx):]...)
	size := 1
	for _, d := range remShape {
		size *= d
	}
	out := newTensor(remShape, t.Dtype)
	copy(out.Data, t.Data[off:off+size])
	return out, true
}

// setSlice writes a scalar element when idx covers every dimension.
func (t *TensorValue) setSlice(idx []int, val float64) bool {
	if len(idx) != len(t.Shape) {
		return false
	}
	off := t.offset(idx)
	if off < 0 {
		return false
	}
	t.Data[off] = val
	return true
}

func (t *TensorValue) sameShape(o *TensorValue) bool {
	if len(t.Shape) != len(o.Shape) {
		return false
	}
	for i := range t.Shape {
		if t.Shape[i] != o.Shape[i] {
			return false
		}
	}
	return true
}

// elementWise applies op component-wise to two identically shaped tensors,
// promoting to float if either operand is float (spec §4.5).
func elementWise(a, b *TensorValue, op func(x, y float64) float64) *TensorValue {
	dtype := "int"
	if a.Dtype == "float" || b.Dtype == "float" {
		dtype = "float"
	}
	out := newTensor(a.Shape, dtype)
	for i := range out.Data {
		out.Data[i] = op(a.Data[i], b.Data[i])
	}
	return out
}

// transpose implements rank-1 (n,)->(1,n) and rank-2 (a,b)->(b,a).
func (t *TensorValue) transpose() *TensorValue {
	if len(t.Shape) == 1 {
		out := newTensor([]int{1, t.Shape[0]}, t.Dtype)
		copy(out.Data, t.Data)
		return out
	}

	rows, cols := t.Shape[0], t.Shape[1]
	out := newTensor([]int{cols, rows}, t.Dtype)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Data[c*rows+r] = t.Data[r*cols+c]
		}
	}
	return out
}

// eye builds the n x n identity matrix.
func eye(n int) *TensorValue {
	out := newTensor([]int{n, n}, "int")
	for i := 0; i < n; i++ {
		out.Data[i*n+i] = 1
	}
	return out
}

func onesFilled(shape []int) *TensorValue {
	out := newTensor(shape, "int")
	for i := range out.Data {
		out.Data[i] = 1
	}
	return out
}
