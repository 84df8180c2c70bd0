package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/api/types/filters"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerList lists containers. By default only running containers are
// returned.
func (cli *Client) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	query := url.Values{}
	if options.All {
		query.Set("all", "1")
	}
	if options.Limit > 0 {
		query.Set("limit", strconv.Itoa(options.Limit))
	}
	if options.Size {
		query.Set("size", "1")
	}
	if options.Filters.Len() > 0 {
		filterJSON, err := filters.ToJSON(options.Filters)
		if err != nil {
			return nil, err
		}
		query.Set("filters", filterJSON)
	}

	resp, err := cli.call(ctx, endpoints.ContainerList, nil, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var containers []container.Summary
	err = decode(resp, &containers)
	return containers, err
}
