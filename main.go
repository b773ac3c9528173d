package main

import (
	"os"

	"github.com/synthbench/evalreport/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
