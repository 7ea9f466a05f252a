// Command mscript runs M language source files.
package main

import (
	"os"

	"github.com/cwbudde/go-mscript/cmd/mscript/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
