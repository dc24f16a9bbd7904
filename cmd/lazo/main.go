// Package main provides the Lazo launcher.
package main

import (
	"os"

	"github.com/qorex-scitech/lazo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
