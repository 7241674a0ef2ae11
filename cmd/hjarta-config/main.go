package main

import (
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-config/internal/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdout, os.Stderr)

	err := root.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
