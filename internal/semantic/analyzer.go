// Package semantic implements the static type/shape checker of spec §4.4: a
// single best-effort pass over the AST that populates a scope-aware symbol
// table and collects line-numbered diagnostics without halting on the first
// error.
package semantic

import (
	"fmt"

	"github.com/cwbudde/go-mscript/internal/ast"
	"github.com/cwbudde/go-mscript/internal/errors"
	"github.com/cwbudde/go-mscript/internal/lexer"
)

// Analyzer walks a parsed Program, reporting diagnostics and building a
// symbol table as it goes.
type Analyzer struct {
	scope *Scope
	errs  []*errors.CompilerError
}

// NewAnalyzer creates an Analyzer with a fresh "program" root scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{scope: newProgramScope()}
}

// Errors returns every diagnostic collected during Analyze.
func (a *Analyzer) Errors() []*errors.CompilerError { return a.errs }

// ErrorCount returns len(Errors()).
func (a *Analyzer) ErrorCount() int { return len(a.errs) }

func (a *Analyzer) reportf(line int, format string, args ...interface{}) {
	a.errs = append(a.errs, errors.NewCompilerError(lexer.Position{Line: line}, fmt.Sprintf(format, args...)))
}

// Analyze runs the checker over program, returning the number of errors
// found. Checking continues after local errors (spec §4.4: "best-effort").
func (a *Analyzer) Analyze(program *ast.Program) int {
	a.visitInstructions(program.Body)
	return a.ErrorCount()
}
