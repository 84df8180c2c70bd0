package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/container"
)

func (a *App) newRmCmd() *cobra.Command {
	var options container.RemoveOptions

	cmd := &cobra.Command{
		Use:     "rm CONTAINER [CONTAINER...]",
		Aliases: []string{"remove"},
		Short:   "Remove one or more containers",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.forEachContainer(cmd.Context(), args, "remove", func(ctx context.Context, id string) error {
				return a.client.ContainerRemove(ctx, id, options)
			})
		},
	}

	cmd.Flags().BoolVarP(&options.Force, "force", "f", false, "Force removal of a running container")
	cmd.Flags().BoolVarP(&options.RemoveVolumes, "volumes", "v", false, "Remove anonymous volumes associated with the container")

	return cmd
}
