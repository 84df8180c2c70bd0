package client

import (
	"context"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerPause suspends all processes in a container.
func (cli *Client) ContainerPause(ctx context.Context, containerID string) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	resp, err := cli.call(ctx, endpoints.ContainerPause, []string{containerID}, nil, nil)
	ensureReaderClosed(resp)
	return err
}

// ContainerUnpause resumes a paused container.
func (cli *Client) ContainerUnpause(ctx context.Context, containerID string) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	resp, err := cli.call(ctx, endpoints.ContainerUnpause, []string{containerID}, nil, nil)
	ensureReaderClosed(resp)
	return err
}
