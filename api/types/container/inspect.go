package container

import (
	"github.com/docker/go-connections/nat"

	"github.com/tuplecats/docker-client/api/types/network"
)

// State is the runtime state of a container as reported by inspect.
type State struct {
	// Status is one of "created", "running", "paused", "restarting",
	// "removing", "exited" or "dead".
	Status     string  `json:"Status"`
	Running    bool    `json:"Running"`
	Paused     bool    `json:"Paused"`
	Restarting bool    `json:"Restarting"`
	OOMKilled  bool    `json:"OOMKilled"`
	Dead       bool    `json:"Dead"`
	Pid        int     `json:"Pid"`
	ExitCode   int     `json:"ExitCode"`
	Error      string  `json:"Error"`
	StartedAt  string  `json:"StartedAt"`
	FinishedAt string  `json:"FinishedAt"`
	Health     *Health `json:"Health,omitempty"`
}

// NetworkSettings is the network state of a container as reported by
// inspect. The top-level address fields describe the default bridge
// network; Networks has one entry per connected network.
type NetworkSettings struct {
	Bridge      string                               `json:"Bridge"`
	SandboxID   string                               `json:"SandboxID"`
	Gateway     string                               `json:"Gateway"`
	IPAddress   string                               `json:"IPAddress"`
	IPPrefixLen int                                  `json:"IPPrefixLen"`
	MacAddress  string                               `json:"MacAddress"`
	Ports       nat.PortMap                          `json:"Ports"`
	Networks    map[string]*network.EndpointSettings `json:"Networks"`
}

// InspectResponse is the engine's answer to a container inspect call.
// SizeRw and SizeRootFs are only present when the call asked for sizes.
type InspectResponse struct {
	ID              string           `json:"Id"`
	Created         string           `json:"Created"`
	Path            string           `json:"Path"`
	Args            []string         `json:"Args"`
	State           *State           `json:"State"`
	Image           string           `json:"Image"`
	Name            string           `json:"Name"`
	RestartCount    int              `json:"RestartCount"`
	Driver          string           `json:"Driver"`
	Platform        string           `json:"Platform"`
	MountLabel      string           `json:"MountLabel"`
	ProcessLabel    string           `json:"ProcessLabel"`
	AppArmorProfile string           `json:"AppArmorProfile"`
	ExecIDs         []string         `json:"ExecIDs"`
	HostConfig      *HostConfig      `json:"HostConfig"`
	SizeRw          *int64           `json:"SizeRw,omitempty"`
	SizeRootFs      *int64           `json:"SizeRootFs,omitempty"`
	Config          *Config          `json:"Config"`
	NetworkSettings *NetworkSettings `json:"NetworkSettings"`
	Mounts          []MountPoint     `json:"Mounts"`
}
