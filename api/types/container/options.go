package container

import "github.com/tuplecats/docker-client/api/types/filters"

// ListOptions holds the parameters of a container list call.
type ListOptions struct {
	// All includes stopped containers. By default only running containers
	// are returned.
	All bool

	// Limit caps the number of returned containers, most recently created
	// first. Zero means no limit.
	Limit int

	// Size asks the daemon to compute SizeRw and SizeRootFs for each row.
	Size bool

	Filters filters.Args
}

// StopOptions holds the parameters of container stop and restart calls.
type StopOptions struct {
	// Timeout in seconds before the daemon kills the container. Nil means
	// the container's configured timeout, or the daemon default.
	Timeout *int
}

// RemoveOptions holds the parameters of a container remove call.
type RemoveOptions struct {
	RemoveVolumes bool
	RemoveLinks   bool
	Force         bool
}

// LogsOptions holds the parameters of a container logs call.
type LogsOptions struct {
	ShowStdout bool
	ShowStderr bool

	// Follow streams new output until the connection is closed.
	Follow bool

	// Timestamps prefixes each line with its time.
	Timestamps bool

	// Since returns only lines after this time, as an RFC 3339 date or a
	// Unix timestamp. Empty means the whole log.
	Since string

	// Tail limits output to this many trailing lines, or "all".
	Tail string
}

// WaitCondition is the container state a wait call blocks on.
type WaitCondition string

const (
	// WaitConditionNotRunning returns as soon as the container is not
	// running, immediately when it never started. The daemon default.
	WaitConditionNotRunning WaitCondition = "not-running"

	// WaitConditionNextExit waits for the next exit, even if the container
	// is not running yet.
	WaitConditionNextExit WaitCondition = "next-exit"

	// WaitConditionRemoved waits until the container is removed.
	WaitConditionRemoved WaitCondition = "removed"
)
