// Command graphtrace runs step-recording graph algorithms over a city road
// network (or a user-supplied graph) and exports each trace for the web
// visualizer.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphtrace:", err)
		os.Exit(1)
	}
}
