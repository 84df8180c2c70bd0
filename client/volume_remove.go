package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// VolumeRemove deletes a volume. Volumes in use are refused unless force
// is set.
func (cli *Client) VolumeRemove(ctx context.Context, volumeID string, force bool) error {
	if volumeID == "" {
		return objectNotFoundError{object: "volume", id: volumeID}
	}
	query := url.Values{}
	if force {
		query.Set("force", "1")
	}
	resp, err := cli.call(ctx, endpoints.VolumeRemove, []string{volumeID}, query, nil)
	ensureReaderClosed(resp)
	return err
}
