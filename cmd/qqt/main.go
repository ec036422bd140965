// Package main is the qqt command.
package main

import (
	"os"

	"github.com/sartorproj/qqt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
