package client

import (
	"context"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerExecCreate registers an exec process in a running container.
// The process does not run until it is started through the exec endpoints;
// its state can be read back with ExecInspect.
func (cli *Client) ContainerExecCreate(ctx context.Context, containerID string, req container.ExecRequest) (container.ExecCreateResponse, error) {
	var response container.ExecCreateResponse

	if containerID == "" {
		return response, objectNotFoundError{object: "container", id: containerID}
	}

	resp, err := cli.call(ctx, endpoints.ContainerExecCreate, []string{containerID}, nil, req)
	defer ensureReaderClosed(resp)
	if err != nil {
		return response, err
	}

	err = decode(resp, &response)
	return response, err
}

// ExecInspect returns the state of an exec process.
func (cli *Client) ExecInspect(ctx context.Context, execID string) (container.ExecInspect, error) {
	var inspect container.ExecInspect

	if execID == "" {
		return inspect, objectNotFoundError{object: "exec instance", id: execID}
	}

	resp, err := cli.call(ctx, endpoints.ExecInspect, []string{execID}, nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return inspect, err
	}

	err = decode(resp, &inspect)
	return inspect, err
}
