package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerTop lists the processes running in a container. psArgs is
// passed to ps on the daemon host; empty means the daemon default.
func (cli *Client) ContainerTop(ctx context.Context, containerID string, psArgs string) (container.TopResponse, error) {
	var response container.TopResponse

	if containerID == "" {
		return response, objectNotFoundError{object: "container", id: containerID}
	}

	query := url.Values{}
	if psArgs != "" {
		query.Set("ps_args", psArgs)
	}

	resp, err := cli.call(ctx, endpoints.ContainerTop, []string{containerID}, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return response, err
	}

	err = decode(resp, &response)
	return response, err
}
