package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cargolock/internal/cli"
	"github.com/arthur-debert/cargolock/pkg/errors"
	"github.com/arthur-debert/cargolock/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// A failed check already printed its diff.
		if !errors.IsErrorCode(err, errors.ErrNotCanonical) {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
