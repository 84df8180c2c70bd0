package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerInspect returns all the daemon knows about a container.
// withSize asks the daemon to also compute the size of its filesystem.
func (cli *Client) ContainerInspect(ctx context.Context, containerID string, withSize bool) (container.InspectResponse, error) {
	var response container.InspectResponse

	if containerID == "" {
		return response, objectNotFoundError{object: "container", id: containerID}
	}

	query := url.Values{}
	if withSize {
		query.Set("size", "1")
	}

	resp, err := cli.call(ctx, endpoints.ContainerInspect, []string{containerID}, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return response, err
	}

	err = decode(resp, &response)
	return response, err
}
