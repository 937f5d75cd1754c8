// Command gridsight runs grid line, circle and line-of-sight queries from
// the command line or from a YAML scenario file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
