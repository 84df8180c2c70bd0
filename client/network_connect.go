package client

import (
	"context"

	"github.com/tuplecats/docker-client/api/types/network"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// NetworkConnect attaches a container to a network. Both running and
// stopped containers can be connected. config may be nil; it sets the
// container's addressing and aliases on this network.
func (cli *Client) NetworkConnect(ctx context.Context, networkID, containerID string, config *network.EndpointSettings) error {
	if networkID == "" {
		return objectNotFoundError{object: "network", id: networkID}
	}
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	body := network.ConnectRequest{Container: containerID, EndpointConfig: config}
	resp, err := cli.call(ctx, endpoints.NetworkConnect, []string{networkID}, nil, body)
	ensureReaderClosed(resp)
	return err
}
