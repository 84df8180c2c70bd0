package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/image"
)

func (a *App) newPullCmd() *cobra.Command {
	var (
		platform string
		quiet    bool
	)
	cmd := &cobra.Command{
		Use:   "pull [flags] IMAGE",
		Short: "Pull an image from a registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p *ocispec.Platform
			if platform != "" {
				parsed, err := parsePlatform(platform)
				if err != nil {
					return err
				}
				p = &parsed
			}

			progress := a.stdout
			if quiet {
				progress = io.Discard
			}
			if err := a.pullImage(cmd.Context(), args[0], p, progress); err != nil {
				return err
			}
			if quiet {
				fmt.Fprintln(a.stdout, args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "", "pull for a specific platform (os/arch[/variant])")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress output")
	return cmd
}

// pullImage pulls ref, rendering the daemon's progress stream to progress.
func (a *App) pullImage(ctx context.Context, ref string, platform *ocispec.Platform, progress io.Writer) error {
	body, err := a.client.ImagePull(ctx, ref, image.PullOptions{Platform: platform})
	if err != nil {
		return fmt.Errorf("failed to pull image %q: %w\nCheck the image name and registry access", ref, err)
	}
	defer body.Close()

	if err := renderPullProgress(body, progress); err != nil {
		return fmt.Errorf("failed to pull image %q: %w", ref, err)
	}
	return nil
}

// parsePlatform parses the os/arch[/variant] platform form.
func parsePlatform(raw string) (ocispec.Platform, error) {
	parts := strings.Split(raw, "/")
	switch len(parts) {
	case 2:
		return ocispec.Platform{OS: parts[0], Architecture: parts[1]}, nil
	case 3:
		return ocispec.Platform{OS: parts[0], Architecture: parts[1], Variant: parts[2]}, nil
	default:
		return ocispec.Platform{}, fmt.Errorf("invalid platform %q (want os/arch[/variant])", raw)
	}
}
