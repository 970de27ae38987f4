package main

import (
	"os"

	"github.com/msto63/complexkit/cmd/complexkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
