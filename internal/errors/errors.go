// Package errors formats the checker's static diagnostics with their source
// line and optional ANSI coloring, following the teacher's CompilerError
// design. Parser syntax errors are plain strings and do not pass through it.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-mscript/internal/lexer"
)

// CompilerError is a single static diagnostic: a message tied to a source
// line, formatted the way spec.md §6/§7 requires ("Error on line <n>:
// <message>", in red).
type CompilerError struct {
	Message string
	Line    int
}

// NewCompilerError builds a CompilerError from a position and message.
func NewCompilerError(pos lexer.Position, message string) *CompilerError {
	return &CompilerError{Message: message, Line: pos.Line}
}

// Error implements the error interface with no coloring.
func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders "Error on line <n>: <message>", in red/bold when color is
// requested.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString(fmt.Sprintf("Error on line %d: %s", e.Line, e.Message))
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// FormatErrors renders each error on its own line.
func FormatErrors(errs []*CompilerError, color bool) string {
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString(e.Format(color))
		sb.WriteString("\n")
	}
	return sb.String()
}
