package volume

import "github.com/tuplecats/docker-client/api/types/filters"

// ListOptions holds the parameters of a volume list call.
type ListOptions struct {
	Filters filters.Args
}

// ListResponse is the engine's answer to a volume list call.
type ListResponse struct {
	Volumes  []Volume `json:"Volumes"`
	Warnings []string `json:"Warnings"`
}
