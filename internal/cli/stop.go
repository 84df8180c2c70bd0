package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tuplecats/docker-client/api/types/container"
)

func (a *App) newStopCmd() *cobra.Command {
	var timeout int
	cmd := &cobra.Command{
		Use:   "stop [flags] CONTAINER [CONTAINER...]",
		Short: "Stop running containers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := container.StopOptions{}
			if cmd.Flags().Changed("time") {
				options.Timeout = &timeout
			}
			return a.forEachContainer(cmd.Context(), args, "stop", func(ctx context.Context, id string) error {
				return a.client.ContainerStop(ctx, id, options)
			})
		},
	}
	cmd.Flags().IntVarP(&timeout, "time", "t", 10, "seconds to wait before killing the container")
	return cmd
}

func (a *App) newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start CONTAINER [CONTAINER...]",
		Short: "Start stopped containers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.forEachContainer(cmd.Context(), args, "start", a.client.ContainerStart)
		},
	}
}

// forEachContainer applies op to every named container concurrently and
// prints the IDs that succeeded, in argument order. One container failing
// does not stop the others.
func (a *App) forEachContainer(ctx context.Context, ids []string, verb string, op func(context.Context, string) error) error {
	results := make([]error, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			if err := op(ctx, id); err != nil {
				results[i] = err
				return fmt.Errorf("failed to %s container %q: %w", verb, id, err)
			}
			return nil
		})
	}
	err := g.Wait()

	for i, id := range ids {
		if results[i] == nil {
			fmt.Fprintln(a.stdout, id)
		}
	}
	return err
}
