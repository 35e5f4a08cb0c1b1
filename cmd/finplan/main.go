// Command finplan runs the financial planning engine from the command line or
// serves it over HTTP.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
