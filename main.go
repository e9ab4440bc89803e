package main

import (
	"os"

	"github.com/yksoni-monk/JobApplicationAI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
