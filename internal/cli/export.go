package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/moby/term"
	"github.com/spf13/cobra"
)

func (a *App) newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export CONTAINER",
		Short: "Export a container's filesystem as a tar archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exportContainer(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func (a *App) exportContainer(ctx context.Context, containerID, output string) error {
	dest := a.stdout
	if output == "" {
		if _, isTerminal := term.GetFdInfo(a.stdout); isTerminal {
			return errors.New("refusing to write a tar archive to a terminal\nUse the --output flag or redirect stdout to a file")
		}
	} else {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", output, err)
		}
		defer file.Close()
		dest = file
	}

	body, err := a.client.ContainerExport(ctx, containerID)
	if err != nil {
		return fmt.Errorf("failed to export container %q: %w", containerID, err)
	}
	defer body.Close()

	if _, err := io.Copy(dest, body); err != nil {
		return fmt.Errorf("failed to write container archive: %w", err)
	}
	return nil
}
