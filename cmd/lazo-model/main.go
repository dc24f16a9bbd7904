// Package main provides the Lazo model editor.
package main

import (
	"os"

	"github.com/qorex-scitech/lazo/internal/cli"
)

func main() {
	if err := cli.ExecuteModel(); err != nil {
		os.Exit(1)
	}
}
