package client

import (
	"context"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// PingResponse is what the daemon advertises about itself on the
// unversioned ping endpoint.
type PingResponse struct {
	APIVersion   string
	OSType       string
	Experimental bool
}

// Ping probes the daemon. The version headers are parsed even when the
// daemon answers with an error status, which is what API version
// negotiation relies on.
func (cli *Client) Ping(ctx context.Context) (PingResponse, error) {
	var ping PingResponse

	resp, err := cli.call(ctx, endpoints.Ping, nil, nil, nil)
	defer ensureReaderClosed(resp)

	if resp.header != nil {
		ping.APIVersion = resp.header.Get("Api-Version")
		ping.OSType = resp.header.Get("Ostype")
		ping.Experimental = resp.header.Get("Docker-Experimental") == "true"
	}
	return ping, err
}
