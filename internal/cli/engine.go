package cli

import (
	"context"
	"io"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/api/types/filters"
	"github.com/tuplecats/docker-client/api/types/image"
	"github.com/tuplecats/docker-client/api/types/network"
	"github.com/tuplecats/docker-client/api/types/volume"
	"github.com/tuplecats/docker-client/client"
)

// EngineClient is the slice of the client API the commands use. Commands
// depend on this interface rather than *client.Client so tests can inject a
// scripted engine.
type EngineClient interface {
	ContainerCreate(ctx context.Context, config container.Config, hostConfig *container.HostConfig, platform *ocispec.Platform) (container.CreateResponse, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerInspect(ctx context.Context, containerID string, withSize bool) (container.InspectResponse, error)
	ContainerStart(ctx context.Context, containerID string) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (container.WaitResponse, error)
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerDiff(ctx context.Context, containerID string) ([]container.FilesystemChange, error)
	ContainerExport(ctx context.Context, containerID string) (io.ReadCloser, error)
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	VolumeCreate(ctx context.Context, req volume.CreateRequest) (volume.Volume, error)
	VolumeList(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error)
	VolumeInspect(ctx context.Context, volumeID string) (volume.Volume, error)
	VolumeRemove(ctx context.Context, volumeID string, force bool) error
	VolumesPrune(ctx context.Context, pruneFilters filters.Args) (volume.PruneReport, error)
	NetworkCreate(ctx context.Context, req network.CreateRequest) (network.CreateResponse, error)
	NetworkConnect(ctx context.Context, networkID, containerID string, config *network.EndpointSettings) error
	NetworkInspect(ctx context.Context, networkID string, options network.InspectOptions) (network.Inspect, error)
	Ping(ctx context.Context) (client.PingResponse, error)
	ClientVersion() string
	DaemonHost() string
	Close() error
}

var _ EngineClient = (*client.Client)(nil)
