package client

import (
	"context"

	"github.com/tuplecats/docker-client/api/types/volume"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// VolumeCreate creates a volume. Creating a named volume that already
// exists returns the existing volume.
func (cli *Client) VolumeCreate(ctx context.Context, req volume.CreateRequest) (volume.Volume, error) {
	var vol volume.Volume

	resp, err := cli.call(ctx, endpoints.VolumeCreate, nil, nil, req)
	defer ensureReaderClosed(resp)
	if err != nil {
		return vol, err
	}

	err = decode(resp, &vol)
	return vol, err
}
