package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerRestart stops and starts a container in one call. The options
// timeout bounds the stop phase.
func (cli *Client) ContainerRestart(ctx context.Context, containerID string, options container.StopOptions) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	query := url.Values{}
	if options.Timeout != nil {
		query.Set("t", strconv.Itoa(*options.Timeout))
	}
	resp, err := cli.call(ctx, endpoints.ContainerRestart, []string{containerID}, query, nil)
	ensureReaderClosed(resp)
	return err
}
