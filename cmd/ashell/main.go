package main

import (
	"os"

	"github.com/bnema/assistant-shell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
