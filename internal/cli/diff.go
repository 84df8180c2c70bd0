package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff CONTAINER",
		Short: "Inspect changes to files or directories on a container's filesystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, err := a.client.ContainerDiff(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to diff container %q: %w", args[0], err)
			}

			for _, change := range changes {
				fmt.Fprintln(a.stdout, change.String())
			}
			return nil
		},
	}
}
