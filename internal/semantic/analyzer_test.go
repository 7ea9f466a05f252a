package semantic

import (
	"testing"

	"github.com/cwbudde/go-mscript/internal/lexer"
	"github.com/cwbudde/go-mscript/internal/parser"
)

func analyze(t *testing.T, src string) *Analyzer {
	t.Helper()
	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	a := NewAnalyzer()
	a.Analyze(program)
	return a
}

func TestCheckerAcceptsValidTensorAssignment(t *testing.T) {
	a := analyze(t, `A = zeros(3, 3); A[0,0] = 1;`)
	if a.ErrorCount() != 0 {
		t.Fatalf("want no errors, got %v", a.Errors())
	}
}

func TestCheckerRejectsUndefinedVariable(t *testing.T) {
	a := analyze(t, `print x;`)
	if a.ErrorCount() == 0 {
		t.Fatal("want an error referencing x before assignment")
	}
}

func TestCheckerRejectsShapeMismatch(t *testing.T) {
	a := analyze(t, `A = [1,2,3]; B = [1,2]; C = A .+ B;`)
	if a.ErrorCount() != 1 {
		t.Fatalf("want exactly 1 shape-mismatch error, got %d: %v", a.ErrorCount(), a.Errors())
	}
}

func TestCheckerRejectsScalarTensorMix(t *testing.T) {
	a := analyze(t, `A = zeros(2, 2); x = 1; B = A + x;`)
	if a.ErrorCount() == 0 {
		t.Fatal("want an error mixing tensor and scalar operands")
	}
}

func TestCheckerAcceptsTransposeShape(t *testing.T) {
	a := analyze(t, `A = [[1,2],[3,4]]; B = A';`)
	if a.ErrorCount() != 0 {
		t.Fatalf("want no errors, got %v", a.Errors())
	}
	sym := a.scope.get("B")
	if sym == nil || !sym.Desc.IsTensor() {
		t.Fatalf("want B bound as a tensor, got %+v", sym)
	}
	if sym.Desc.Shape.String() != "(2, 2)" {
		t.Fatalf("want shape (2, 2), got %s", sym.Desc.Shape)
	}
}

func TestCheckerRejectsBreakOutsideLoop(t *testing.T) {
	a := analyze(t, `break;`)
	if a.ErrorCount() == 0 {
		t.Fatal("want an error for break outside a loop")
	}
}

func TestCheckerAcceptsBreakInsideLoop(t *testing.T) {
	a := analyze(t, `for i = 0:3 { if (i == 1) { break; } }`)
	if a.ErrorCount() != 0 {
		t.Fatalf("want no errors, got %v", a.Errors())
	}
}

func TestCheckerRejectsNonIntWhileCondition(t *testing.T) {
	a := analyze(t, `A = zeros(2,2); while (A) { print 1; }`)
	if a.ErrorCount() == 0 {
		t.Fatal("want an error for a tensor while-condition")
	}
}

func TestCheckerStringConcatenation(t *testing.T) {
	a := analyze(t, `s = "a" + "b";`)
	if a.ErrorCount() != 0 {
		t.Fatalf("want no errors, got %v", a.Errors())
	}
	sym := a.scope.get("s")
	if sym == nil || sym.Desc.Type != TStr {
		t.Fatalf("want s: str, got %+v", sym)
	}
}

func TestCheckerIndexOutOfBoundsLiteral(t *testing.T) {
	a := analyze(t, `A = zeros(2, 2); print A[5, 0];`)
	if a.ErrorCount() == 0 {
		t.Fatal("want an out-of-bounds index error")
	}
}

func TestCheckerCompoundAssignmentDesugars(t *testing.T) {
	a := analyze(t, `x = 1; x += 2;`)
	if a.ErrorCount() != 0 {
		t.Fatalf("want no errors, got %v", a.Errors())
	}
}
