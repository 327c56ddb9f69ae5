package docs

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/ui"
)

//go:embed manual.md
var manual string

// NewCommand creates the docs command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "docs",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Root().PersistentFlags().GetString("format")
			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
			}

			fmt.Fprint(cmd.OutOrStdout(), render(manual, format))
			return nil
		},
	}
}

// render converts the manual to terminal output, falling back to the
// raw markdown when rendering fails
func render(content string, format ui.Format) string {
	if format == ui.FormatText {
		return content
	}

	options := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
