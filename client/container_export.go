package client

import (
	"context"
	"io"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerExport returns the container's filesystem as a tar stream. The
// caller owns the reader and must close it.
func (cli *Client) ContainerExport(ctx context.Context, containerID string) (io.ReadCloser, error) {
	if containerID == "" {
		return nil, objectNotFoundError{object: "container", id: containerID}
	}

	resp, err := cli.call(ctx, endpoints.ContainerExport, []string{containerID}, nil, nil)
	if err != nil {
		ensureReaderClosed(resp)
		return nil, err
	}
	return resp.body, nil
}
