package main

import (
	"fmt"
	"os"
)

func main() {
	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	root := newRootCommand(wiring)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(wiring.stderr, "corkboard error: %v\n", err)
		os.Exit(1)
	}
}
