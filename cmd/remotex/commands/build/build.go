package build

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/angusrush/remotex/pkg/compile"
	"github.com/angusrush/remotex/pkg/config"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/executor"
	"github.com/angusrush/remotex/pkg/logging"
	"github.com/angusrush/remotex/pkg/ui"
)

// NewCommand creates the build command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build <file.tex>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			formatName, _ := cmd.Root().PersistentFlags().GetString("format")
			server, _ := cmd.Flags().GetString("server")

			format, err := ui.ParseFormat(formatName)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger.Info().
				Str("document", args[0]).
				Str("server", server).
				Bool("dry_run", dryRun).
				Msg("Starting remote build")

			result, err := compile.Run(cmd.Context(), compile.Options{
				DocumentPath: args[0],
				Server:       server,
				DryRun:       dryRun,
				Config:       *cfg,
				Runner:       executor.New(executor.Options{DryRun: dryRun}),
				Reporter:     ui.NewReporter(format, os.Stdout),
			})
			if err != nil {
				return err
			}

			fmt.Println(ui.RenderSummary(result, dryRun))
			return nil
		},
	}

	cmd.Flags().StringP("server", "s", "", "Remote host to build on (overrides configuration)")

	return cmd
}
