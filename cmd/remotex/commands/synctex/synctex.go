package synctex

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angusrush/remotex/pkg/config"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/logging"
	stx "github.com/angusrush/remotex/pkg/synctex"
	"github.com/angusrush/remotex/pkg/texpath"
	"github.com/angusrush/remotex/pkg/ui"
)

// NewCommand creates the synctex command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "synctex <file.synctex.gz>",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.synctex")

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			local, _ := cmd.Flags().GetString("local")
			remoteRoot, _ := cmd.Flags().GetString("remote-root")

			path, err := texpath.Normalize(args[0])
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve mapping file path")
			}

			if local == "" {
				local = texpath.Decompose(path).BottomFolder
			}
			if remoteRoot == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				remoteRoot = cfg.RemoteRoot
			}

			logger.Info().
				Str("file", path).
				Str("local", local).
				Str("remote_root", remoteRoot).
				Msg("Repairing mapping file")

			if dryRun {
				fmt.Printf("would repair %s, replacing %s with %s\n", path, remoteRoot, local)
				return nil
			}

			result, err := stx.Repair(path, local, remoteRoot)
			if err != nil {
				return err
			}

			fmt.Println(ui.RenderRepairSummary(path, result))
			return nil
		},
	}

	cmd.Flags().String("local", "", "Local folder the remote root is replaced with (defaults to the file's grandparent directory)")
	cmd.Flags().String("remote-root", "", "Remote staging root to replace (defaults to the configured remote_root)")

	return cmd
}
