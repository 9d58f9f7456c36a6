package main

import (
	"os"

	"biblia/cmd/biblia/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
