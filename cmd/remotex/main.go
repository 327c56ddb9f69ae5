package main

import (
	"fmt"
	"os"

	"github.com/angusrush/remotex/cmd/remotex/commands"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/ui"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))

		// Errors raised by remotex itself carry a code; anything
		// uncoded came from cobra's argument and flag handling
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
