package main

import (
	"os"

	"github.com/Grandillionaire/council-landing/cmd/linkcheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
