package client

import (
	"context"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerDiff lists the changes in a container's filesystem since it
// was created.
func (cli *Client) ContainerDiff(ctx context.Context, containerID string) ([]container.FilesystemChange, error) {
	if containerID == "" {
		return nil, objectNotFoundError{object: "container", id: containerID}
	}

	resp, err := cli.call(ctx, endpoints.ContainerChanges, []string{containerID}, nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var changes []container.FilesystemChange
	err = decode(resp, &changes)
	return changes, err
}
