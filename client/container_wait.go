package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerWait blocks until the container reaches the given condition and
// returns its exit status. An empty condition waits for the container to
// stop running. Cancellation comes from ctx.
func (cli *Client) ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (container.WaitResponse, error) {
	var response container.WaitResponse

	if containerID == "" {
		return response, objectNotFoundError{object: "container", id: containerID}
	}

	query := url.Values{}
	if condition != "" {
		query.Set("condition", string(condition))
	}

	resp, err := cli.call(ctx, endpoints.ContainerWait, []string{containerID}, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return response, err
	}

	err = decode(resp, &response)
	return response, err
}
