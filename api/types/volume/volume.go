// Package volume holds the request and response types of the engine's
// volume endpoints.
package volume

// Volume is a named volume as reported by create, list and inspect.
type Volume struct {
	Name       string            `json:"Name"`
	Driver     string            `json:"Driver"`
	Mountpoint string            `json:"Mountpoint"`
	CreatedAt  string            `json:"CreatedAt,omitempty"`
	Status     map[string]any    `json:"Status,omitempty"`
	Labels     map[string]string `json:"Labels"`
	Scope      string            `json:"Scope"`
	Options    map[string]string `json:"Options"`

	// UsageData is only present when the daemon computed disk usage.
	UsageData *UsageData `json:"UsageData,omitempty"`
}

// UsageData is the disk usage of a volume. Size is -1 when unknown;
// RefCount is the number of containers referencing the volume.
type UsageData struct {
	Size     int64 `json:"Size"`
	RefCount int64 `json:"RefCount"`
}

// PruneReport is the engine's answer to a volume prune call.
type PruneReport struct {
	VolumesDeleted []string `json:"VolumesDeleted"`
	SpaceReclaimed uint64   `json:"SpaceReclaimed"`
}
