// Package main is the entry point for the readafter CLI.
package main

import (
	"os"

	"github.com/f3rmion/readafter/cmd/readafter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
