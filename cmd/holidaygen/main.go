// Package main provides the holidaygen command-line tool.
package main

import (
	"os"

	"holidaygen/cmd/holidaygen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
