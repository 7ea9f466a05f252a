package ast

import (
	"testing"

	"github.com/cwbudde/go-mscript/internal/lexer"
)

func TestNodeLineReflectsAssignedPosition(t *testing.T) {
	n := &IntNum{Value: 42}
	n.Pos = lexer.Position{Line: 7, Column: 3}

	if n.Line() != 7 {
		t.Fatalf("want line 7, got %d", n.Line())
	}
}

func TestProgramLineIsZero(t *testing.T) {
	p := &Program{Body: &Instructions{}}
	if p.Line() != 0 {
		t.Fatalf("want Program.Line() == 0, got %d", p.Line())
	}
}

func TestAssignOpBaseOp(t *testing.T) {
	cases := map[AssignOp]BinOp{
		AssignAdd: OpAdd,
		AssignSub: OpSub,
		AssignMul: OpMul,
		AssignDiv: OpDiv,
	}
	for op, want := range cases {
		if got := op.BaseOp(); got != want {
			t.Errorf("%s.BaseOp() = %s, want %s", op, got, want)
		}
	}
	if AssignSet.BaseOp() != "" {
		t.Errorf("AssignSet.BaseOp() should be empty, got %s", AssignSet.BaseOp())
	}
}
