package network

import "time"

// InspectOptions holds the parameters of a network inspect call.
type InspectOptions struct {
	// Verbose includes service-level details on swarm networks.
	Verbose bool

	// Scope filters the lookup to "swarm", "global" or "local". Empty
	// searches all scopes.
	Scope string
}

// Inspect is the engine's answer to a network inspect call.
type Inspect struct {
	Name       string                      `json:"Name"`
	ID         string                      `json:"Id"`
	Created    time.Time                   `json:"Created"`
	Scope      string                      `json:"Scope"`
	Driver     string                      `json:"Driver"`
	EnableIPv6 bool                        `json:"EnableIPv6"`
	IPAM       IPAM                        `json:"IPAM"`
	Internal   bool                        `json:"Internal"`
	Attachable bool                        `json:"Attachable"`
	Ingress    bool                        `json:"Ingress"`
	Containers map[string]EndpointResource `json:"Containers"`
	Options    map[string]string           `json:"Options"`
	Labels     map[string]string           `json:"Labels"`
}
