package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newInspectCmd() *cobra.Command {
	var withSize bool

	cmd := &cobra.Command{
		Use:   "inspect CONTAINER",
		Short: "Display detailed information on a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := a.client.ContainerInspect(cmd.Context(), args[0], withSize)
			if err != nil {
				return fmt.Errorf("failed to inspect container %q: %w", args[0], err)
			}
			return a.printJSON(response)
		},
	}

	cmd.Flags().BoolVarP(&withSize, "size", "s", false, "Include container filesystem sizes")

	return cmd
}

// printJSON writes v to stdout as indented JSON, matching the daemon's
// own field casing.
func (a *App) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to render JSON: %w", err)
	}
	fmt.Fprintln(a.stdout, string(out))
	return nil
}
