// Package image holds the request and response types of the engine's
// image endpoints.
package image

import (
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/tuplecats/docker-client/api/types/filters"
)

// Summary is one row of an image list response. Containers and SharedSize
// are -1 when the daemon did not compute them.
type Summary struct {
	ID          string            `json:"Id"`
	ParentID    string            `json:"ParentId"`
	RepoTags    []string          `json:"RepoTags"`
	RepoDigests []string          `json:"RepoDigests"`
	Created     int64             `json:"Created"`
	Size        int64             `json:"Size"`
	SharedSize  int64             `json:"SharedSize"`
	VirtualSize int64             `json:"VirtualSize,omitempty"`
	Containers  int64             `json:"Containers"`
	Labels      map[string]string `json:"Labels"`
}

// ListOptions holds the parameters of an image list call.
type ListOptions struct {
	// All includes intermediate layers. By default only top-level images
	// are returned.
	All bool

	Filters filters.Args
}

// PullOptions holds the parameters of an image pull call.
type PullOptions struct {
	// Platform selects the variant of a multi-platform image, e.g.
	// linux/arm64. Nil lets the daemon pick its own platform.
	Platform *ocispec.Platform
}
