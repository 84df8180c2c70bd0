package client

import (
	"context"

	"github.com/tuplecats/docker-client/api/types/network"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// NetworkCreate creates a network from a validated request.
func (cli *Client) NetworkCreate(ctx context.Context, req network.CreateRequest) (network.CreateResponse, error) {
	var response network.CreateResponse

	resp, err := cli.call(ctx, endpoints.NetworkCreate, nil, nil, req)
	defer ensureReaderClosed(resp)
	if err != nil {
		return response, err
	}

	err = decode(resp, &response)
	return response, err
}
