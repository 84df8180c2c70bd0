package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/volume"
)

func (a *App) newVolumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Manage volumes",
	}

	cmd.AddCommand(
		a.newVolumeLsCmd(),
		a.newVolumeCreateCmd(),
		a.newVolumeInspectCmd(),
		a.newVolumeRmCmd(),
		a.newVolumePruneCmd(),
	)

	return cmd
}

func (a *App) newVolumeLsCmd() *cobra.Command {
	var (
		quiet      bool
		rawFilters []string
	)

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List volumes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filterArgs, err := parseFilters(rawFilters)
			if err != nil {
				return err
			}

			response, err := a.client.VolumeList(cmd.Context(), volume.ListOptions{Filters: filterArgs})
			if err != nil {
				return fmt.Errorf("failed to list volumes: %w", err)
			}

			for _, warning := range response.Warnings {
				a.log.Warn(warning)
			}

			if quiet {
				for _, v := range response.Volumes {
					fmt.Fprintln(a.stdout, v.Name)
				}
				return nil
			}

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DRIVER\tVOLUME NAME")
			for _, v := range response.Volumes {
				fmt.Fprintf(w, "%s\t%s\n", v.Driver, v.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print volume names")
	cmd.Flags().StringArrayVar(&rawFilters, "filter", nil, "Filter output (for example label=purpose=test)")

	return cmd
}

func (a *App) newVolumeCreateCmd() *cobra.Command {
	var (
		driver string
		opts   []string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "create [NAME]",
		Short: "Create a volume",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := volume.NewCreateBuilder()
			if len(args) == 1 {
				builder.Name(args[0])
			}
			if driver != "" {
				builder.Driver(driver)
			}

			driverOpts, err := splitKeyValues(opts)
			if err != nil {
				return err
			}
			for key, value := range driverOpts {
				builder.DriverOpt(key, value)
			}

			labelPairs, err := splitKeyValues(labels)
			if err != nil {
				return err
			}
			for key, value := range labelPairs {
				builder.Label(key, value)
			}

			created, err := a.client.VolumeCreate(cmd.Context(), builder.Build())
			if err != nil {
				return fmt.Errorf("failed to create volume: %w", err)
			}

			fmt.Fprintln(a.stdout, created.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&driver, "driver", "d", "", "Volume driver name")
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "Driver specific options (key=value)")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "Volume metadata (key=value)")

	return cmd
}

func (a *App) newVolumeInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VOLUME",
		Short: "Display detailed information on a volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.VolumeInspect(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to inspect volume %q: %w", args[0], err)
			}
			return a.printJSON(v)
		},
	}
}

func (a *App) newVolumeRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm VOLUME [VOLUME...]",
		Aliases: []string{"remove"},
		Short:   "Remove one or more volumes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed []string
			for _, name := range args {
				if err := a.client.VolumeRemove(cmd.Context(), name, force); err != nil {
					a.log.Error("failed to remove volume", "volume", name, "error", err)
					failed = append(failed, name)
					continue
				}
				fmt.Fprintln(a.stdout, name)
			}
			if len(failed) > 0 {
				return fmt.Errorf("failed to remove volumes: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force removal")

	return cmd
}

func (a *App) newVolumePruneCmd() *cobra.Command {
	var rawFilters []string

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove unused local volumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filterArgs, err := parseFilters(rawFilters)
			if err != nil {
				return err
			}

			report, err := a.client.VolumesPrune(cmd.Context(), filterArgs)
			if err != nil {
				return fmt.Errorf("failed to prune volumes: %w", err)
			}

			for _, name := range report.VolumesDeleted {
				fmt.Fprintln(a.stdout, name)
			}
			fmt.Fprintf(a.stdout, "Total reclaimed space: %s\n", units.HumanSize(float64(report.SpaceReclaimed)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawFilters, "filter", nil, "Filter pruned volumes (for example label=purpose=test)")

	return cmd
}
