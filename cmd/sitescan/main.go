// Package main is the entry point for the sitescan CLI.
package main

import "github.com/sitescan/sitescan-cli/internal/cli"

func main() {
	cli.Execute()
}
