package client

import (
	"context"

	"github.com/tuplecats/docker-client/api/types/volume"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// VolumeInspect returns all the daemon knows about a volume.
func (cli *Client) VolumeInspect(ctx context.Context, volumeID string) (volume.Volume, error) {
	var vol volume.Volume

	if volumeID == "" {
		return vol, objectNotFoundError{object: "volume", id: volumeID}
	}

	resp, err := cli.call(ctx, endpoints.VolumeInspect, []string{volumeID}, nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return vol, err
	}

	err = decode(resp, &vol)
	return vol, err
}
