// Package main is the entry point for the cleanup CLI.
package main

import "cleanup.dev/pkg/cleanup/cmd"

func main() {
	cmd.Execute()
}
