package cli

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/container"
)

func (a *App) newLogsCmd() *cobra.Command {
	var opts struct {
		follow     bool
		timestamps bool
		tail       string
		since      string
	}
	cmd := &cobra.Command{
		Use:   "logs [flags] CONTAINER",
		Short: "Fetch a container's logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// The stream is multiplexed unless the container has a TTY.
			inspect, err := a.client.ContainerInspect(ctx, args[0], false)
			if err != nil {
				return fmt.Errorf("failed to inspect container %q: %w", args[0], err)
			}
			tty := inspect.Config != nil && inspect.Config.Tty()

			return a.dumpLogs(ctx, args[0], tty, container.LogsOptions{
				ShowStdout: true,
				ShowStderr: true,
				Follow:     opts.follow,
				Timestamps: opts.timestamps,
				Tail:       opts.tail,
				Since:      opts.since,
			})
		},
	}
	cmd.Flags().BoolVarP(&opts.follow, "follow", "f", false, "keep streaming new output")
	cmd.Flags().BoolVarP(&opts.timestamps, "timestamps", "t", false, "prefix each line with its timestamp")
	cmd.Flags().StringVar(&opts.tail, "tail", "", "number of lines from the end (default all)")
	cmd.Flags().StringVar(&opts.since, "since", "", "only output since this RFC3339 timestamp or relative duration")
	return cmd
}

// dumpLogs fetches a container's log stream and writes it to the app
// streams, demultiplexing unless the container has a TTY.
func (a *App) dumpLogs(ctx context.Context, containerID string, tty bool, options container.LogsOptions) error {
	body, err := a.client.ContainerLogs(ctx, containerID, options)
	if err != nil {
		return fmt.Errorf("failed to fetch logs for container %q: %w", containerID, err)
	}
	defer body.Close()

	if tty {
		_, err := io.Copy(a.stdout, body)
		return err
	}
	return demuxStream(body, a.stdout, a.stderr)
}

// demuxStream splits the engine's multiplexed stream into stdout and stderr.
// Each frame is an 8-byte header (stream byte, three zero bytes, big-endian
// payload length) followed by the payload.
func demuxStream(r io.Reader, stdout, stderr io.Writer) error {
	var header [8]byte
	for {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("malformed log stream: %w", err)
		}

		dst := stdout
		if header[0] == 2 {
			dst = stderr
		}

		size := int64(binary.BigEndian.Uint32(header[4:]))
		if _, err := io.CopyN(dst, r, size); err != nil {
			return fmt.Errorf("malformed log stream: %w", err)
		}
	}
}
