// Package main is the entry point for the pipeloop CLI.
package main

import "github.com/katalvlaran/pipeloop/internal/cli"

func main() {
	cli.Execute()
}
