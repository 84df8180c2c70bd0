package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/api/types/filters"
)

func (a *App) newPsCmd() *cobra.Command {
	var opts struct {
		all    bool
		quiet  bool
		filter []string
	}
	cmd := &cobra.Command{
		Use:   "ps [flags]",
		Short: "List containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listFilters, err := parseFilters(opts.filter)
			if err != nil {
				return err
			}

			containers, err := a.client.ContainerList(cmd.Context(), container.ListOptions{
				All:     opts.all,
				Filters: listFilters,
			})
			if err != nil {
				return fmt.Errorf("failed to list containers: %w", err)
			}

			if opts.quiet {
				for _, summary := range containers {
					fmt.Fprintln(a.stdout, truncateID(summary.ID))
				}
				return nil
			}

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CONTAINER ID\tIMAGE\tCOMMAND\tCREATED\tSTATUS\tNAMES")
			for _, summary := range containers {
				fmt.Fprintf(w, "%s\t%s\t%q\t%s\t%s\t%s\n",
					truncateID(summary.ID),
					summary.Image,
					summary.Command,
					humanCreated(summary.Created),
					summary.Status,
					strings.Join(displayNames(summary.Names), ","),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "include stopped containers")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only print container IDs")
	cmd.Flags().StringArrayVar(&opts.filter, "filter", nil, "filter output (key=value, repeatable)")
	return cmd
}

// parseFilters turns repeated key=value flags into daemon filter args.
func parseFilters(pairs []string) (filters.Args, error) {
	args := filters.NewArgs()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return args, fmt.Errorf("invalid filter %q (want key=value)", pair)
		}
		args.Add(key, value)
	}
	return args, nil
}

// truncateID shortens a container identifier the way the engine CLI does.
func truncateID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// humanCreated renders a unix creation time as "N units ago".
func humanCreated(created int64) string {
	return units.HumanDuration(time.Since(time.Unix(created, 0))) + " ago"
}

// displayNames strips the leading slash the daemon puts on container names.
func displayNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, strings.TrimPrefix(name, "/"))
	}
	return out
}
