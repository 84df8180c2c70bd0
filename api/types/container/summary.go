package container

import (
	"github.com/tuplecats/docker-client/api/types/network"
)

// PortSummary is one exposed or published port in a container list row.
type PortSummary struct {
	IP          string `json:"IP,omitempty"`
	PrivatePort uint16 `json:"PrivatePort"`
	PublicPort  uint16 `json:"PublicPort,omitempty"`
	Type        string `json:"Type"`
}

// MountPoint is one mount of a container as reported by list and inspect.
type MountPoint struct {
	Type        string `json:"Type,omitempty"`
	Name        string `json:"Name,omitempty"`
	Source      string `json:"Source"`
	Destination string `json:"Destination"`
	Driver      string `json:"Driver,omitempty"`
	Mode        string `json:"Mode"`
	RW          bool   `json:"RW"`
	Propagation string `json:"Propagation"`
}

// SummaryNetworkSettings is the network excerpt in a container list row.
type SummaryNetworkSettings struct {
	Networks map[string]*network.EndpointSettings `json:"Networks"`
}

// Summary is one row of a container list response.
type Summary struct {
	ID         string            `json:"Id"`
	Names      []string          `json:"Names"`
	Image      string            `json:"Image"`
	ImageID    string            `json:"ImageID"`
	Command    string            `json:"Command"`
	Created    int64             `json:"Created"`
	Ports      []PortSummary     `json:"Ports"`
	SizeRw     int64             `json:"SizeRw,omitempty"`
	SizeRootFs int64             `json:"SizeRootFs,omitempty"`
	Labels     map[string]string `json:"Labels"`
	State      string            `json:"State"`
	Status     string            `json:"Status"`
	HostConfig struct {
		NetworkMode string `json:"NetworkMode,omitempty"`
	} `json:"HostConfig"`
	NetworkSettings *SummaryNetworkSettings `json:"NetworkSettings"`
	Mounts          []MountPoint            `json:"Mounts"`
}
