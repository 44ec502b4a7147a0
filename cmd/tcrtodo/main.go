// Package main is the entry point for the tcrtodo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tcrtodo/tcrtodo/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
