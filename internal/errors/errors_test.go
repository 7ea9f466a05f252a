package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-mscript/internal/lexer"
)

func TestFormatWithoutColor(t *testing.T) {
	e := NewCompilerError(lexer.Position{Line: 12}, "Variable referenced before assignment")
	want := "Error on line 12: Variable referenced before assignment"
	if got := e.Format(false); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormatWithColorWrapsAnsiCodes(t *testing.T) {
	e := NewCompilerError(lexer.Position{Line: 1}, "boom")
	got := e.Format(true)
	if !strings.HasPrefix(got, "\033[1;31m") || !strings.HasSuffix(got, "\033[0m") {
		t.Fatalf("want ANSI-wrapped message, got %q", got)
	}
}

func TestFormatErrorsJoinsWithNewline(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(lexer.Position{Line: 1}, "first"),
		NewCompilerError(lexer.Position{Line: 2}, "second"),
	}
	out := FormatErrors(errs, false)
	if !strings.Contains(out, "line 1: first") || !strings.Contains(out, "line 2: second") {
		t.Fatalf("want both messages present, got %q", out)
	}
}
