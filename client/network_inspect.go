package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/network"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// NetworkInspect returns all the daemon knows about a network, looked up
// by ID or name.
func (cli *Client) NetworkInspect(ctx context.Context, networkID string, options network.InspectOptions) (network.Inspect, error) {
	var inspect network.Inspect

	if networkID == "" {
		return inspect, objectNotFoundError{object: "network", id: networkID}
	}

	query := url.Values{}
	if options.Verbose {
		query.Set("verbose", "true")
	}
	if options.Scope != "" {
		query.Set("scope", options.Scope)
	}

	resp, err := cli.call(ctx, endpoints.NetworkInspect, []string{networkID}, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return inspect, err
	}

	err = decode(resp, &inspect)
	return inspect, err
}
