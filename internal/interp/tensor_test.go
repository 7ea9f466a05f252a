package interp

import "testing"

func TestTensorSliceScalarElement(t *testing.T) {
	tv := newTensor([]int{2, 2}, "int")
	copy(tv.Data, []float64{1, 2, 3, 4})

	v, ok := tv.slice([]int{1, 0})
	if !ok {
		t.Fatal("want in-bounds slice to succeed")
	}
	if iv, ok := v.(IntegerValue); !ok || iv != 3 {
		t.Fatalf("want 3, got %v", v)
	}
}

func TestTensorSliceOutOfBounds(t *testing.T) {
	tv := newTensor([]int{2, 2}, "int")
	if _, ok := tv.slice([]int{5, 0}); ok {
		t.Fatal("want out-of-bounds slice to fail")
	}
}

func TestTensorSetSlice(t *testing.T) {
	tv := newTensor([]int{2, 2}, "int")
	if !tv.setSlice([]int{0, 1}, 9) {
		t.Fatal("want in-bounds set to succeed")
	}
	v, _ := tv.slice([]int{0, 1})
	if iv := v.(IntegerValue); iv != 9 {
		t.Fatalf("want 9, got %v", iv)
	}
}

func TestTensorTransposeRank1(t *testing.T) {
	tv := newTensor([]int{3}, "int")
	copy(tv.Data, []float64{1, 2, 3})
	out := tv.transpose()
	if len(out.Shape) != 2 || out.Shape[0] != 1 || out.Shape[1] != 3 {
		t.Fatalf("want shape (1,3), got %v", out.Shape)
	}
}

func TestTensorTransposeRank2(t *testing.T) {
	tv := newTensor([]int{2, 3}, "int")
	copy(tv.Data, []float64{1, 2, 3, 4, 5, 6})
	out := tv.transpose()
	if out.Shape[0] != 3 || out.Shape[1] != 2 {
		t.Fatalf("want shape (3,2), got %v", out.Shape)
	}
	// original [0][1] == 2 should land at transposed [1][0]
	v, _ := out.slice([]int{1, 0})
	if v.(IntegerValue) != 2 {
		t.Fatalf("want transposed[1][0]=2, got %v", v)
	}
}

func TestEyeBuildsIdentity(t *testing.T) {
	id := eye(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v, _ := id.slice([]int{r, c})
			want := int64(0)
			if r == c {
				want = 1
			}
			if int64(v.(IntegerValue)) != want {
				t.Fatalf("eye(3)[%d][%d] = %v, want %d", r, c, v, want)
			}
		}
	}
}

func TestElementWisePromotesToFloat(t *testing.T) {
	a := newTensor([]int{2}, "int")
	copy(a.Data, []float64{1, 2})
	b := newTensor([]int{2}, "float")
	copy(b.Data, []float64{0.5, 0.5})

	out := elementWise(a, b, func(x, y float64) float64 { return x + y })
	if out.Dtype != "float" {
		t.Fatalf("want float dtype, got %s", out.Dtype)
	}
	if out.Data[0] != 1.5 {
		t.Fatalf("want 1.5, got %v", out.Data[0])
	}
}

func TestTensorStringFormatsMatrix(t *testing.T) {
	tv := newTensor([]int{2, 2}, "int")
	copy(tv.Data, []float64{1, 2, 3, 4})
	want := "[[1, 2], [3, 4]]"
	if got := tv.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
