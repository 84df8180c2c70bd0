package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerRemove deletes a container. Running containers are refused
// unless Force is set.
func (cli *Client) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	query := url.Values{}
	if options.RemoveVolumes {
		query.Set("v", "1")
	}
	if options.RemoveLinks {
		query.Set("link", "1")
	}
	if options.Force {
		query.Set("force", "1")
	}
	resp, err := cli.call(ctx, endpoints.ContainerRemove, []string{containerID}, query, nil)
	ensureReaderClosed(resp)
	return err
}
