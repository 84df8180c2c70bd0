package client

import (
	"context"
	"net/url"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ContainerCreate creates a container from a validated config. hostConfig
// and platform may be nil. A named config sends its name as a query
// parameter, never in the body.
func (cli *Client) ContainerCreate(ctx context.Context, config container.Config, hostConfig *container.HostConfig, platform *ocispec.Platform) (container.CreateResponse, error) {
	var response container.CreateResponse

	query := url.Values{}
	if config.Name() != "" {
		query.Set("name", config.Name())
	}
	if platform != nil {
		if err := cli.NewVersionError("1.41", "specify container image platform"); err != nil {
			return response, err
		}
		query.Set("platform", formatPlatform(*platform))
	}

	body := container.CreateRequest{Config: config, HostConfig: hostConfig}
	resp, err := cli.call(ctx, endpoints.ContainerCreate, nil, query, body)
	defer ensureReaderClosed(resp)
	if err != nil {
		return response, err
	}

	if err := decode(resp, &response); err != nil {
		return response, err
	}
	if response.Warnings == nil {
		response.Warnings = []string{}
	}
	return response, nil
}

// formatPlatform renders a platform as os/arch[/variant], the form the
// platform query parameter takes.
func formatPlatform(p ocispec.Platform) string {
	s := p.OS + "/" + p.Architecture
	if p.Variant != "" {
		s += "/" + p.Variant
	}
	return s
}
