package genconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angusrush/remotex/pkg/gencfg"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")

			result, err := gencfg.GenConfig(gencfg.Options{Write: write})
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return nil
			}

			if result.Written {
				fmt.Fprintf(cmd.OutOrStdout(), MsgWrittenFormat, result.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), MsgExistsFormat, result.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, "Write config to file instead of stdout")

	return cmd
}
