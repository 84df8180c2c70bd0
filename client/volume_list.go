package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/filters"
	"github.com/tuplecats/docker-client/api/types/volume"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// VolumeList lists the volumes the daemon knows about. Null lists in the
// daemon response come back as empty slices.
func (cli *Client) VolumeList(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error) {
	var response volume.ListResponse

	query := url.Values{}
	if options.Filters.Len() > 0 {
		filterJSON, err := filters.ToJSON(options.Filters)
		if err != nil {
			return response, err
		}
		query.Set("filters", filterJSON)
	}

	resp, err := cli.call(ctx, endpoints.VolumeList, nil, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return response, err
	}

	if err := decode(resp, &response); err != nil {
		return response, err
	}
	if response.Volumes == nil {
		response.Volumes = []volume.Volume{}
	}
	if response.Warnings == nil {
		response.Warnings = []string{}
	}
	return response, nil
}
