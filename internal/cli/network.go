package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/network"
)

func (a *App) newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage networks",
	}

	cmd.AddCommand(
		a.newNetworkCreateCmd(),
		a.newNetworkConnectCmd(),
		a.newNetworkInspectCmd(),
	)

	return cmd
}

func (a *App) newNetworkCreateCmd() *cobra.Command {
	var (
		driver     string
		internal   bool
		attachable bool
		ipv6       bool
		subnet     string
		gateway    string
		ipRange    string
		opts       []string
		labels     []string
	)

	cmd := &cobra.Command{
		Use:   "create NETWORK",
		Short: "Create a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := network.NewCreate(args[0]).
				Internal(internal).
				Attachable(attachable).
				EnableIPv6(ipv6)
			if driver != "" {
				builder.Driver(driver)
			}

			if subnet != "" || gateway != "" || ipRange != "" {
				builder.IPAM(network.NewIPAM("default").WithConfig(network.IPAMConfig{
					Subnet:  subnet,
					Gateway: gateway,
					IPRange: ipRange,
				}))
			}

			options, err := splitKeyValues(opts)
			if err != nil {
				return err
			}
			for key, value := range options {
				builder.Option(key, value)
			}

			labelPairs, err := splitKeyValues(labels)
			if err != nil {
				return err
			}
			for key, value := range labelPairs {
				builder.Label(key, value)
			}

			req, err := builder.Build()
			if err != nil {
				return err
			}

			created, err := a.client.NetworkCreate(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to create network %q: %w", args[0], err)
			}

			if created.Warning != "" {
				a.log.Warn(created.Warning)
			}
			fmt.Fprintln(a.stdout, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&driver, "driver", "d", "", "Network driver (default bridge)")
	cmd.Flags().BoolVar(&internal, "internal", false, "Restrict external access to the network")
	cmd.Flags().BoolVar(&attachable, "attachable", false, "Enable manual container attachment")
	cmd.Flags().BoolVar(&ipv6, "ipv6", false, "Enable IPv6 networking")
	cmd.Flags().StringVar(&subnet, "subnet", "", "Subnet in CIDR format")
	cmd.Flags().StringVar(&gateway, "gateway", "", "IPv4 gateway for the subnet")
	cmd.Flags().StringVar(&ipRange, "ip-range", "", "Allocate container IPs from a sub-range")
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "Driver specific options (key=value)")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "Network metadata (key=value)")

	return cmd
}

func (a *App) newNetworkConnectCmd() *cobra.Command {
	var ip string

	cmd := &cobra.Command{
		Use:   "connect NETWORK CONTAINER",
		Short: "Connect a container to a network",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var config *network.EndpointSettings
			if ip != "" {
				config = &network.EndpointSettings{
					IPAMConfig: &network.EndpointIPAMConfig{IPv4Address: ip},
				}
			}

			if err := a.client.NetworkConnect(cmd.Context(), args[0], args[1], config); err != nil {
				return fmt.Errorf("failed to connect container %q to network %q: %w", args[1], args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ip, "ip", "", "IPv4 address to assign to the container")

	return cmd
}

func (a *App) newNetworkInspectCmd() *cobra.Command {
	var options network.InspectOptions

	cmd := &cobra.Command{
		Use:   "inspect NETWORK",
		Short: "Display detailed information on a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := a.client.NetworkInspect(cmd.Context(), args[0], options)
			if err != nil {
				return fmt.Errorf("failed to inspect network %q: %w", args[0], err)
			}
			return a.printJSON(response)
		},
	}

	cmd.Flags().BoolVarP(&options.Verbose, "verbose", "v", false, "Include service-level details on swarm networks")
	cmd.Flags().StringVar(&options.Scope, "scope", "", `Limit the lookup to "swarm", "global" or "local"`)

	return cmd
}
