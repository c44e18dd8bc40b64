// Package main is the entry point for the glide CLI binary.
package main

import (
	"os"

	"github.com/irahardianto/glide/cmd/glide/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
