package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/api/types/filters"
	"github.com/tuplecats/docker-client/api/types/image"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ImageList lists the images the daemon holds.
func (cli *Client) ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error) {
	query := url.Values{}
	if options.All {
		query.Set("all", "1")
	}
	if options.Filters.Len() > 0 {
		filterJSON, err := filters.ToJSON(options.Filters)
		if err != nil {
			return nil, err
		}
		query.Set("filters", filterJSON)
	}

	resp, err := cli.call(ctx, endpoints.ImageList, nil, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var images []image.Summary
	err = decode(resp, &images)
	return images, err
}
