package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-mscript/internal/errors"
	"github.com/cwbudde/go-mscript/internal/interp"
	"github.com/cwbudde/go-mscript/internal/lexer"
	"github.com/cwbudde/go-mscript/internal/parser"
	"github.com/cwbudde/go-mscript/internal/semantic"
)

var runCmd = &cobra.Command{
	Use:   "run <source-file>",
	Short: "Run an M source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		runFile(args[0])
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// runFile drives the lexer -> parser -> checker -> evaluator pipeline and
// terminates the process, matching spec.md §6's CLI contract exactly -
// including the legacy "Cannot open <path> file" / exit 0 behavior on a
// missing source file, preserved from original_source/src/main_lab5.py.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Cannot open %s file\n", path)
		os.Exit(0)
	}

	l := lexer.New(string(src))
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}

	analyzer := semantic.NewAnalyzer()
	if analyzer.Analyze(program) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(analyzer.Errors(), true))
		os.Exit(1)
	}

	in := interp.New(os.Stdout)
	code, runtimeErr := in.Run(program)
	if runtimeErr != nil {
		fmt.Fprintln(os.Stderr, runtimeErr.String())
		os.Exit(1)
	}
	os.Exit(code)
}
