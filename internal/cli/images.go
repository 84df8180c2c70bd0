package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/docker/go-units"
	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/image"
)

func (a *App) newImagesCmd() *cobra.Command {
	var opts struct {
		all    bool
		quiet  bool
		filter []string
	}
	cmd := &cobra.Command{
		Use:   "images [flags]",
		Short: "List images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listFilters, err := parseFilters(opts.filter)
			if err != nil {
				return err
			}

			images, err := a.client.ImageList(cmd.Context(), image.ListOptions{
				All:     opts.all,
				Filters: listFilters,
			})
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			if opts.quiet {
				for _, summary := range images {
					fmt.Fprintln(a.stdout, shortImageID(summary.ID))
				}
				return nil
			}

			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "REPOSITORY\tTAG\tIMAGE ID\tCREATED\tSIZE")
			for _, summary := range images {
				repo, tag := primaryRepoTag(summary.RepoTags)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					repo,
					tag,
					shortImageID(summary.ID),
					units.HumanDuration(time.Since(time.Unix(summary.Created, 0)))+" ago",
					units.HumanSize(float64(summary.Size)),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "include intermediate layers")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only print image IDs")
	cmd.Flags().StringArrayVar(&opts.filter, "filter", nil, "filter output (key=value, repeatable)")
	return cmd
}

// shortImageID renders an image identifier like "sha256:ec14c7..." as its
// first twelve digest characters.
func shortImageID(id string) string {
	parsed, err := digest.Parse(id)
	if err != nil {
		return truncateID(id)
	}
	return truncateID(parsed.Encoded())
}

// primaryRepoTag splits the first repo:tag pair, "<none>" when the image is
// untagged. A colon followed by a slash is a registry port, not a tag.
func primaryRepoTag(repoTags []string) (repo, tag string) {
	if len(repoTags) == 0 {
		return "<none>", "<none>"
	}
	first := repoTags[0]
	if idx := strings.LastIndex(first, ":"); idx >= 0 && !strings.Contains(first[idx+1:], "/") {
		return first[:idx], first[idx+1:]
	}
	return first, "<none>"
}
