package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docker/go-connections/nat"
	"github.com/docker/go-units"
	"github.com/tidwall/jsonc"

	"github.com/tuplecats/docker-client/api/types/container"
)

// ContainerSpec is the file format behind dockhand run --file, and the
// meeting point for the run flags: both paths produce a spec, and
// Materialize turns the spec into the typed request payloads.
//
// Spec files are JSONC, so they can carry comments and trailing commas.
type ContainerSpec struct {
	Image      string            `json:"image"`
	Name       string            `json:"name"`
	Cmd        []string          `json:"cmd"`
	Entrypoint []string          `json:"entrypoint"`
	Env        []string          `json:"env"`
	Labels     map[string]string `json:"labels"`
	WorkingDir string            `json:"workingDir"`
	Hostname   string            `json:"hostname"`
	User       string            `json:"user"`
	Tty        bool              `json:"tty"`

	Binds      []string `json:"binds"`
	Ports      []string `json:"ports"`
	Network    string   `json:"network"`
	Restart    string   `json:"restart"`
	Memory     string   `json:"memory"`
	ExtraHosts []string `json:"extraHosts"`
	Privileged bool     `json:"privileged"`
}

// loadSpec reads and parses a JSONC container spec file.
func loadSpec(path string) (ContainerSpec, error) {
	var spec ContainerSpec

	raw, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("failed to read spec file %q: %w", path, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(raw), &spec); err != nil {
		return spec, fmt.Errorf("failed to parse spec file %q: %w\nSpec files are JSONC: JSON plus comments and trailing commas", path, err)
	}
	return spec, nil
}

// Materialize builds the create-request payloads from the spec. The host
// config is nil when no host-level field is set.
func (s ContainerSpec) Materialize() (container.Config, *container.HostConfig, error) {
	builder := container.WithImage(s.Image).
		Name(s.Name).
		Hostname(s.Hostname).
		User(s.User).
		WorkingDir(s.WorkingDir).
		Tty(s.Tty).
		Env(s.Env...)
	if len(s.Cmd) > 0 {
		builder.Cmd(s.Cmd...)
	}
	if len(s.Entrypoint) > 0 {
		builder.Entrypoint(s.Entrypoint...)
	}
	for key, value := range s.Labels {
		builder.Label(key, value)
	}

	exposed, bindings, err := nat.ParsePortSpecs(s.Ports)
	if err != nil {
		return container.Config{}, nil, fmt.Errorf("failed to parse port spec: %w\nUse the [ip:][host-port:]container-port[/proto] form", err)
	}
	for port := range exposed {
		builder.ExposePort(string(port))
	}

	hostConfig, err := s.hostConfig(bindings)
	if err != nil {
		return container.Config{}, nil, err
	}

	config, err := builder.Build()
	if err != nil {
		return container.Config{}, nil, err
	}
	return config, hostConfig, nil
}

func (s ContainerSpec) hostConfig(bindings map[nat.Port][]nat.PortBinding) (*container.HostConfig, error) {
	hc := container.NewHostConfig()
	used := false

	for _, bind := range s.Binds {
		hc.WithBind(bind)
		used = true
	}
	for port, portBindings := range bindings {
		for _, binding := range portBindings {
			hc.WithPortBinding(port, binding)
		}
		used = true
	}
	for _, host := range s.ExtraHosts {
		hc.WithExtraHost(host)
		used = true
	}
	if s.Network != "" {
		hc.WithNetworkMode(container.NetworkMode(s.Network))
		used = true
	}
	if s.Privileged {
		hc.Privileged = true
		used = true
	}
	if s.Memory != "" {
		limit, err := units.RAMInBytes(s.Memory)
		if err != nil {
			return nil, fmt.Errorf("failed to parse memory limit %q: %w\nUse a size like \"512m\" or \"2g\"", s.Memory, err)
		}
		hc.WithMemory(limit)
		used = true
	}
	if s.Restart != "" {
		policy, err := parseRestartPolicy(s.Restart)
		if err != nil {
			return nil, err
		}
		hc.WithRestartPolicy(policy)
		used = true
	}

	if !used {
		return nil, nil
	}
	return hc, nil
}

// parseRestartPolicy parses the "name[:retries]" restart policy form. Only
// on-failure takes a retry count.
func parseRestartPolicy(raw string) (container.RestartPolicy, error) {
	name, count, hasCount := strings.Cut(raw, ":")
	policy := container.RestartPolicy{Name: name}

	switch name {
	case "no", "always", "unless-stopped":
		if hasCount {
			return policy, fmt.Errorf("restart policy %q does not take a retry count", name)
		}
	case "on-failure":
		if hasCount {
			retries, err := strconv.Atoi(count)
			if err != nil {
				return policy, fmt.Errorf("failed to parse retry count %q in restart policy: %w", count, err)
			}
			policy.MaximumRetryCount = retries
		}
	default:
		return policy, fmt.Errorf("unknown restart policy %q (want no, on-failure, always, or unless-stopped)", name)
	}
	return policy, nil
}

// splitKeyValues turns repeated "key=value" flags into a map.
func splitKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair %q", pair)
		}
		out[key] = value
	}
	return out, nil
}
