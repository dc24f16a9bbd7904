// Package main provides the Lazo node runtime.
package main

import (
	"os"

	"github.com/qorex-scitech/lazo/internal/cli"
)

func main() {
	if err := cli.ExecuteNode(); err != nil {
		os.Exit(1)
	}
}
