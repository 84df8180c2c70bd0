//go:build !windows

package client

// DefaultDockerHost is the daemon address used when none is configured.
const DefaultDockerHost = "unix:///var/run/docker.sock"
