// Package main implements the rcol binary. It is the only public-facing
// entry point; the CLI wiring lives in the internal cli package.
package main

import "github.com/bjaus/rcol/internal/cli"

func main() {
	cli.DoCLI()
}
