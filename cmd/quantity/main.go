// Command quantity parses and renders particle physics quantities and
// compiles particle documents into the database read by the web front end.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
