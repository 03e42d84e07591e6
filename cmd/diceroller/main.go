package main

import (
	"os"

	"diceroller/cmd/diceroller/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
