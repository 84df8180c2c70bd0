package client

import (
	"context"
	"io"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerLogs returns the container's log stream. The caller owns the
// reader and must close it. For a container created without a TTY the
// stream is multiplexed in the engine's frame format, stdout and stderr
// interleaved; with a TTY it is raw.
func (cli *Client) ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error) {
	if containerID == "" {
		return nil, objectNotFoundError{object: "container", id: containerID}
	}

	query := url.Values{}
	if options.ShowStdout {
		query.Set("stdout", "1")
	}
	if options.ShowStderr {
		query.Set("stderr", "1")
	}
	if options.Since != "" {
		query.Set("since", options.Since)
	}
	if options.Timestamps {
		query.Set("timestamps", "1")
	}
	if options.Follow {
		query.Set("follow", "1")
	}
	if options.Tail != "" {
		query.Set("tail", options.Tail)
	}

	resp, err := cli.call(ctx, endpoints.ContainerLogs, []string{containerID}, query, nil)
	if err != nil {
		ensureReaderClosed(resp)
		return nil, err
	}
	return resp.body, nil
}
