package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerStop stops a container. The options timeout overrides the
// container's own stop timeout; when it elapses the daemon kills the
// container. Stopping a container that is already stopped is not an error.
func (cli *Client) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	query := url.Values{}
	if options.Timeout != nil {
		query.Set("t", strconv.Itoa(*options.Timeout))
	}
	resp, err := cli.call(ctx, endpoints.ContainerStop, []string{containerID}, query, nil)
	ensureReaderClosed(resp)
	return err
}
