package client

import (
	"context"
	"net/url"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerRename gives a container a new name.
func (cli *Client) ContainerRename(ctx context.Context, containerID, newName string) error {
	if containerID == "" {
		return objectNotFoundError{object: "container", id: containerID}
	}
	query := url.Values{}
	query.Set("name", newName)
	resp, err := cli.call(ctx, endpoints.ContainerRename, []string{containerID}, query, nil)
	ensureReaderClosed(resp)
	return err
}
