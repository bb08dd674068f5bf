package main

import (
	"os"

	"github.com/bnema/memory-garden/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
