// Package main is the entry point for the loot CLI.
package main

import (
	"os"

	"github.com/RacerBG/loot/cmd/loot/commands"
	"github.com/RacerBG/loot/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
