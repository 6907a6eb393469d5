// Command ppcjit is a thin diagnostic front-end over the internal/asm/ppc
// assembler: it exercises plan() and the full emission pipeline from the
// outside without requiring an embedding IR producer.
package main

import (
	"fmt"
	"os"

	"github.com/gwipplinger/avian/cmd/ppcjit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
