// Package main is the entry point for the genry CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/genry-dev/genry/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(cmd.ExitGenerationError)
	}
}
