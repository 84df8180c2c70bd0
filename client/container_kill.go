package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerKill sends a signal to a container's main process. An empty
// signal lets the daemon default to SIGKILL.
func (cli *Client) ContainerKill(ctx context.Context, containerID, signal string) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	query := url.Values{}
	if signal != "" {
		query.Set("signal", signal)
	}
	resp, err := cli.call(ctx, endpoints.ContainerKill, []string{containerID}, query, nil)
	ensureReaderClosed(resp)
	return err
}
