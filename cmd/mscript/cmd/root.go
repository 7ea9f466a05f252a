package cmd

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd is callable either as `mscript <file>` (its own Args/RunE run the
// program directly, matching spec.md §6's bare CLI contract) or as
// `mscript run <file>` via the run subcommand below. The interpreter's own
// exit code (derived from a top-level `return`, or 0 on missing file) is
// applied with os.Exit from inside runFile; cobra's own error return is
// only used for CLI-usage mistakes (wrong argument count, unknown flag).
var rootCmd = &cobra.Command{
	Use:     "mscript <source-file>",
	Short:   "Interpreter for the M matrix language",
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return c.Usage()
		}
		runFile(args[0])
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// Execute runs the command tree. It returns 2 for CLI-usage errors and 0
// when no file was run (bare usage or --version output); an invocation that
// runs a file terminates via os.Exit inside runFile and never returns here.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 2
	}
	return 0
}
