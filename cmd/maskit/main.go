// Command maskit anonymizes text with the MasKIT service from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/ufal/maskit-web/pkg/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
