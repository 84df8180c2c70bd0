package client

import (
	"context"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerStart starts a container. Starting a container that is already
// running is not an error.
func (cli *Client) ContainerStart(ctx context.Context, containerID string) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	resp, err := cli.call(ctx, endpoints.ContainerStart, []string{containerID}, nil, nil)
	ensureReaderClosed(resp)
	return err
}
