// Package main is the entry point for the wwb command-line tool.
package main

import (
	"errors"
	"os"

	"github.com/Norgate-AV/wwb/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		// A wrapped program's exit status passes through unchanged.
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		os.Exit(1)
	}
}
