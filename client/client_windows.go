package client

// DefaultDockerHost is the daemon address used when none is configured.
const DefaultDockerHost = "npipe:////./pipe/docker_engine"
