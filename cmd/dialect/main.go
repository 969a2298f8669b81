// Package main is the entry point for the dialect CLI.
package main

import (
	"os"

	"github.com/salernoelia/py-dialect-test/cmd/dialect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
