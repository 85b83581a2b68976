// Package main is the entry point for the synmut CLI.
package main

import "synmut.dev/pkg/synmut/cmd"

func main() {
	cmd.Execute()
}
