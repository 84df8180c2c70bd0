package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and daemon version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "dockhand %s\n", Version)
			fmt.Fprintf(a.stdout, "API version: %s\n", a.client.ClientVersion())
			fmt.Fprintf(a.stdout, "Host: %s\n", a.client.DaemonHost())

			ping, err := a.client.Ping(cmd.Context())
			if err != nil {
				a.log.Warn("daemon is not reachable", "error", err)
				return nil
			}

			fmt.Fprintf(a.stdout, "\nServer:\n")
			fmt.Fprintf(a.stdout, "  API version: %s\n", ping.APIVersion)
			fmt.Fprintf(a.stdout, "  OS type: %s\n", ping.OSType)
			fmt.Fprintf(a.stdout, "  Experimental: %t\n", ping.Experimental)
			return nil
		},
	}
}
