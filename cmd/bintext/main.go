package main

import (
	"fmt"
	"os"
)

// Set by ldflags.
var version = "dev"

func main() {
	if err := newRootCommand(newApp()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
