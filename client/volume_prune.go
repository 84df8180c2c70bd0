package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/filters"
	"github.com/tuplecats/docker-client/api/types/volume"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// VolumesPrune deletes unused volumes and reports what was reclaimed.
func (cli *Client) VolumesPrune(ctx context.Context, pruneFilters filters.Args) (volume.PruneReport, error) {
	var report volume.PruneReport

	query := url.Values{}
	if pruneFilters.Len() > 0 {
		filterJSON, err := filters.ToJSON(pruneFilters)
		if err != nil {
			return report, err
		}
		query.Set("filters", filterJSON)
	}

	resp, err := cli.call(ctx, endpoints.VolumesPrune, nil, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return report, err
	}

	err = decode(resp, &report)
	return report, err
}
