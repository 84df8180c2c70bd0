package container

import (
	"github.com/docker/go-connections/nat"
)

// NetworkMode names the network the container joins: "bridge", "host",
// "none", "container:<id>", or a network name.
type NetworkMode string

// RestartPolicy tells the daemon when to restart the container.
type RestartPolicy struct {
	Name              string `json:"Name,omitempty"`
	MaximumRetryCount int    `json:"MaximumRetryCount,omitempty"`
}

// Resources holds the resource limits applied to the container.
type Resources struct {
	Memory     int64 `json:"Memory,omitempty"`
	MemorySwap int64 `json:"MemorySwap,omitempty"`
	NanoCPUs   int64 `json:"NanoCpus,omitempty"`
	CPUShares  int64 `json:"CpuShares,omitempty"`
}

// HostConfig holds host-level settings for a container: mounts, port
// bindings, resource limits. Unlike Config it carries no required fields,
// so it is constructed directly or through NewHostConfig.
type HostConfig struct {
	Binds          []string          `json:"Binds,omitempty"`
	NetworkMode    NetworkMode       `json:"NetworkMode,omitempty"`
	PortBindings   nat.PortMap       `json:"PortBindings,omitempty"`
	RestartPolicy  *RestartPolicy    `json:"RestartPolicy,omitempty"`
	AutoRemove     bool              `json:"AutoRemove,omitempty"`
	ExtraHosts     []string          `json:"ExtraHosts,omitempty"`
	Privileged     bool              `json:"Privileged,omitempty"`
	ReadonlyRootfs bool              `json:"ReadonlyRootfs,omitempty"`
	Sysctls        map[string]string `json:"Sysctls,omitempty"`
	ShmSize        int64             `json:"ShmSize,omitempty"`
	Init           *bool             `json:"Init,omitempty"`
	Resources
}

// NewHostConfig returns an empty host configuration ready for fluent
// population.
func NewHostConfig() *HostConfig {
	return &HostConfig{}
}

// WithBind adds a bind mount in "host:container[:options]" form.
func (hc *HostConfig) WithBind(bind string) *HostConfig {
	hc.Binds = append(hc.Binds, bind)
	return hc
}

// WithNetworkMode sets the network the container joins.
func (hc *HostConfig) WithNetworkMode(mode NetworkMode) *HostConfig {
	hc.NetworkMode = mode
	return hc
}

// WithPortBinding publishes a container port on a host address. Repeated
// calls for the same port accumulate bindings.
func (hc *HostConfig) WithPortBinding(port nat.Port, binding nat.PortBinding) *HostConfig {
	if hc.PortBindings == nil {
		hc.PortBindings = nat.PortMap{}
	}
	hc.PortBindings[port] = append(hc.PortBindings[port], binding)
	return hc
}

// WithAutoRemove removes the container when it exits.
func (hc *HostConfig) WithAutoRemove(v bool) *HostConfig {
	hc.AutoRemove = v
	return hc
}

// WithExtraHost adds a "hostname:ip" entry to the container's /etc/hosts.
func (hc *HostConfig) WithExtraHost(host string) *HostConfig {
	hc.ExtraHosts = append(hc.ExtraHosts, host)
	return hc
}

// WithMemory sets the memory limit in bytes.
func (hc *HostConfig) WithMemory(limit int64) *HostConfig {
	hc.Memory = limit
	return hc
}

// WithSysctl sets a namespaced kernel parameter for the container.
func (hc *HostConfig) WithSysctl(key, value string) *HostConfig {
	if hc.Sysctls == nil {
		hc.Sysctls = map[string]string{}
	}
	hc.Sysctls[key] = value
	return hc
}

// WithRestartPolicy sets when the daemon restarts the container.
func (hc *HostConfig) WithRestartPolicy(policy RestartPolicy) *HostConfig {
	hc.RestartPolicy = &policy
	return hc
}
