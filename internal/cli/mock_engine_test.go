package cli

import (
	"bytes"
	"context"
	"errors"
	"io"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/api/types/filters"
	"github.com/tuplecats/docker-client/api/types/image"
	"github.com/tuplecats/docker-client/api/types/network"
	"github.com/tuplecats/docker-client/api/types/volume"
	"github.com/tuplecats/docker-client/client"
)

// mockEngine is a scripted EngineClient. Calls without a script fail with
// "not implemented", so a test only passes through the paths it expects.
type mockEngine struct {
	containerCreateFunc  func(ctx context.Context, config container.Config, hostConfig *container.HostConfig, platform *ocispec.Platform) (container.CreateResponse, error)
	containerListFunc    func(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	containerInspectFunc func(ctx context.Context, containerID string, withSize bool) (container.InspectResponse, error)
	containerStartFunc   func(ctx context.Context, containerID string) error
	containerStopFunc    func(ctx context.Context, containerID string, options container.StopOptions) error
	containerRemoveFunc  func(ctx context.Context, containerID string, options container.RemoveOptions) error
	containerWaitFunc    func(ctx context.Context, containerID string, condition container.WaitCondition) (container.WaitResponse, error)
	containerLogsFunc    func(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	containerDiffFunc    func(ctx context.Context, containerID string) ([]container.FilesystemChange, error)
	containerExportFunc  func(ctx context.Context, containerID string) (io.ReadCloser, error)
	imageListFunc        func(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	imagePullFunc        func(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	volumeCreateFunc     func(ctx context.Context, req volume.CreateRequest) (volume.Volume, error)
	volumeListFunc       func(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error)
	volumeInspectFunc    func(ctx context.Context, volumeID string) (volume.Volume, error)
	volumeRemoveFunc     func(ctx context.Context, volumeID string, force bool) error
	volumesPruneFunc     func(ctx context.Context, pruneFilters filters.Args) (volume.PruneReport, error)
	networkCreateFunc    func(ctx context.Context, req network.CreateRequest) (network.CreateResponse, error)
	networkConnectFunc   func(ctx context.Context, networkID, containerID string, config *network.EndpointSettings) error
	networkInspectFunc   func(ctx context.Context, networkID string, options network.InspectOptions) (network.Inspect, error)
	pingFunc             func(ctx context.Context) (client.PingResponse, error)
	closeFunc            func() error
}

func (m *mockEngine) ContainerCreate(ctx context.Context, config container.Config, hostConfig *container.HostConfig, platform *ocispec.Platform) (container.CreateResponse, error) {
	if m.containerCreateFunc != nil {
		return m.containerCreateFunc(ctx, config, hostConfig, platform)
	}
	return container.CreateResponse{}, errors.New("not implemented")
}

func (m *mockEngine) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	if m.containerListFunc != nil {
		return m.containerListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngine) ContainerInspect(ctx context.Context, containerID string, withSize bool) (container.InspectResponse, error) {
	if m.containerInspectFunc != nil {
		return m.containerInspectFunc(ctx, containerID, withSize)
	}
	return container.InspectResponse{}, errors.New("not implemented")
}

func (m *mockEngine) ContainerStart(ctx context.Context, containerID string) error {
	if m.containerStartFunc != nil {
		return m.containerStartFunc(ctx, containerID)
	}
	return errors.New("not implemented")
}

func (m *mockEngine) ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error {
	if m.containerStopFunc != nil {
		return m.containerStopFunc(ctx, containerID, options)
	}
	return errors.New("not implemented")
}

func (m *mockEngine) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	if m.containerRemoveFunc != nil {
		return m.containerRemoveFunc(ctx, containerID, options)
	}
	return errors.New("not implemented")
}

func (m *mockEngine) ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (container.WaitResponse, error) {
	if m.containerWaitFunc != nil {
		return m.containerWaitFunc(ctx, containerID, condition)
	}
	return container.WaitResponse{}, errors.New("not implemented")
}

func (m *mockEngine) ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error) {
	if m.containerLogsFunc != nil {
		return m.containerLogsFunc(ctx, containerID, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngine) ContainerDiff(ctx context.Context, containerID string) ([]container.FilesystemChange, error) {
	if m.containerDiffFunc != nil {
		return m.containerDiffFunc(ctx, containerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngine) ContainerExport(ctx context.Context, containerID string) (io.ReadCloser, error) {
	if m.containerExportFunc != nil {
		return m.containerExportFunc(ctx, containerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngine) ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error) {
	if m.imageListFunc != nil {
		return m.imageListFunc(ctx, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngine) ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
	if m.imagePullFunc != nil {
		return m.imagePullFunc(ctx, refStr, options)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngine) VolumeCreate(ctx context.Context, req volume.CreateRequest) (volume.Volume, error) {
	if m.volumeCreateFunc != nil {
		return m.volumeCreateFunc(ctx, req)
	}
	return volume.Volume{}, errors.New("not implemented")
}

func (m *mockEngine) VolumeList(ctx context.Context, options volume.ListOptions) (volume.ListResponse, error) {
	if m.volumeListFunc != nil {
		return m.volumeListFunc(ctx, options)
	}
	return volume.ListResponse{}, errors.New("not implemented")
}

func (m *mockEngine) VolumeInspect(ctx context.Context, volumeID string) (volume.Volume, error) {
	if m.volumeInspectFunc != nil {
		return m.volumeInspectFunc(ctx, volumeID)
	}
	return volume.Volume{}, errors.New("not implemented")
}

func (m *mockEngine) VolumeRemove(ctx context.Context, volumeID string, force bool) error {
	if m.volumeRemoveFunc != nil {
		return m.volumeRemoveFunc(ctx, volumeID, force)
	}
	return errors.New("not implemented")
}

func (m *mockEngine) VolumesPrune(ctx context.Context, pruneFilters filters.Args) (volume.PruneReport, error) {
	if m.volumesPruneFunc != nil {
		return m.volumesPruneFunc(ctx, pruneFilters)
	}
	return volume.PruneReport{}, errors.New("not implemented")
}

func (m *mockEngine) NetworkCreate(ctx context.Context, req network.CreateRequest) (network.CreateResponse, error) {
	if m.networkCreateFunc != nil {
		return m.networkCreateFunc(ctx, req)
	}
	return network.CreateResponse{}, errors.New("not implemented")
}

func (m *mockEngine) NetworkConnect(ctx context.Context, networkID, containerID string, config *network.EndpointSettings) error {
	if m.networkConnectFunc != nil {
		return m.networkConnectFunc(ctx, networkID, containerID, config)
	}
	return errors.New("not implemented")
}

func (m *mockEngine) NetworkInspect(ctx context.Context, networkID string, options network.InspectOptions) (network.Inspect, error) {
	if m.networkInspectFunc != nil {
		return m.networkInspectFunc(ctx, networkID, options)
	}
	return network.Inspect{}, errors.New("not implemented")
}

func (m *mockEngine) Ping(ctx context.Context) (client.PingResponse, error) {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return client.PingResponse{}, errors.New("not implemented")
}

func (m *mockEngine) ClientVersion() string { return "1.40" }

func (m *mockEngine) DaemonHost() string { return client.DefaultDockerHost }

func (m *mockEngine) Close() error {
	if m.closeFunc != nil {
		return m.closeFunc()
	}
	return nil
}

// newTestApp wires an App to in-memory streams and a scripted engine. The
// preset client makes setup skip dialing.
func newTestApp(engine *mockEngine) (*App, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	a := NewApp(stdout, stderr)
	a.client = engine
	return a, stdout, stderr
}

// runCommand executes one dockhand command line against the app.
func runCommand(a *App, args ...string) error {
	root := a.Root()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	return root.Execute()
}
