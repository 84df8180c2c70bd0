package container

import (
	"encoding/json"
	"fmt"

	"github.com/docker/go-connections/nat"
)

// BuildError reports an incomplete or invalid builder state detected by a
// Build call.
type BuildError struct {
	Field  string
	Reason string
}

func (e *BuildError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing required field %q", e.Field)
	}
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// configJSON is the wire shape of a container configuration. Field names
// follow the engine API; unset optional fields are omitted rather than sent
// as zero values. The container name is not part of the body; it travels as
// a query parameter of the create call.
type configJSON struct {
	Hostname        string              `json:"Hostname,omitempty"`
	Domainname      string              `json:"Domainname,omitempty"`
	User            string              `json:"User,omitempty"`
	AttachStdin     bool                `json:"AttachStdin,omitempty"`
	AttachStdout    bool                `json:"AttachStdout,omitempty"`
	AttachStderr    bool                `json:"AttachStderr,omitempty"`
	ExposedPorts    nat.PortSet         `json:"ExposedPorts,omitempty"`
	Tty             bool                `json:"Tty,omitempty"`
	OpenStdin       bool                `json:"OpenStdin,omitempty"`
	StdinOnce       bool                `json:"StdinOnce,omitempty"`
	Env             []string            `json:"Env,omitempty"`
	Cmd             []string            `json:"Cmd,omitempty"`
	Healthcheck     *HealthConfig       `json:"Healthcheck,omitempty"`
	ArgsEscaped     bool                `json:"ArgsEscaped,omitempty"`
	Image           string              `json:"Image"`
	Volumes         map[string]struct{} `json:"Volumes,omitempty"`
	WorkingDir      string              `json:"WorkingDir,omitempty"`
	Entrypoint      []string            `json:"Entrypoint,omitempty"`
	NetworkDisabled bool                `json:"NetworkDisabled,omitempty"`
	MacAddress      string              `json:"MacAddress,omitempty"`
	OnBuild         []string            `json:"OnBuild,omitempty"`
	Labels          map[string]string   `json:"Labels,omitempty"`
	StopSignal      string              `json:"StopSignal,omitempty"`
	StopTimeout     *int                `json:"StopTimeout,omitempty"`
	Shell           []string            `json:"Shell,omitempty"`
}

// Config is a validated container configuration. It is immutable and only
// constructible through ConfigBuilder.Build; the zero value is not
// meaningful.
type Config struct {
	name string
	w    configJSON
}

// Image returns the image the container is created from.
func (c Config) Image() string { return c.w.Image }

// Name returns the requested container name, or "" when the daemon should
// generate one.
func (c Config) Name() string { return c.name }

// Hostname returns the container hostname, or "" when unset.
func (c Config) Hostname() string { return c.w.Hostname }

// User returns the user the container process runs as, or "" when unset.
func (c Config) User() string { return c.w.User }

// WorkingDir returns the working directory of the container process.
func (c Config) WorkingDir() string { return c.w.WorkingDir }

// Tty reports whether a pseudo-TTY is allocated.
func (c Config) Tty() bool { return c.w.Tty }

// Env returns a copy of the environment variables set on the container.
func (c Config) Env() []string { return cloneSlice(c.w.Env) }

// Cmd returns a copy of the command the container runs.
func (c Config) Cmd() []string { return cloneSlice(c.w.Cmd) }

// Entrypoint returns a copy of the container entrypoint.
func (c Config) Entrypoint() []string { return cloneSlice(c.w.Entrypoint) }

// Labels returns a copy of the labels applied to the container.
func (c Config) Labels() map[string]string {
	if c.w.Labels == nil {
		return nil
	}
	out := make(map[string]string, len(c.w.Labels))
	for k, v := range c.w.Labels {
		out[k] = v
	}
	return out
}

// ExposedPorts returns a copy of the ports the container exposes.
func (c Config) ExposedPorts() nat.PortSet {
	if c.w.ExposedPorts == nil {
		return nil
	}
	out := make(nat.PortSet, len(c.w.ExposedPorts))
	for p := range c.w.ExposedPorts {
		out[p] = struct{}{}
	}
	return out
}

// StopTimeout returns the configured stop timeout in seconds. ok is false
// when no timeout was set and the daemon default applies.
func (c Config) StopTimeout() (seconds int, ok bool) {
	if c.w.StopTimeout == nil {
		return 0, false
	}
	return *c.w.StopTimeout, true
}

// Healthcheck returns a copy of the configured health check, or nil.
func (c Config) Healthcheck() *HealthConfig {
	if c.w.Healthcheck == nil {
		return nil
	}
	hc := *c.w.Healthcheck
	hc.Test = cloneSlice(hc.Test)
	return &hc
}

// MarshalJSON encodes the configuration in the engine's wire shape.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.w)
}

// UnmarshalJSON decodes an engine-produced configuration, as found in
// container inspect responses.
func (c *Config) UnmarshalJSON(raw []byte) error {
	return json.Unmarshal(raw, &c.w)
}

// ConfigBuilder accumulates container configuration through a fluent chain.
// Setters perform no validation; Build is the single point where the
// accumulated state is checked and frozen into a Config.
//
// Scalar setters replace the previous value (last write wins). Collection
// fields document whether a method appends or replaces.
type ConfigBuilder struct {
	name     string
	w        configJSON
	rawPorts []string
}

// NewConfigBuilder returns an empty builder. The image must be supplied
// before Build succeeds.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithImage returns a builder with the required image field set.
func WithImage(image string) *ConfigBuilder {
	return NewConfigBuilder().Image(image)
}

// Image sets the image the container is created from. Required.
func (b *ConfigBuilder) Image(image string) *ConfigBuilder {
	b.w.Image = image
	return b
}

// Name sets the container name. When unset the daemon generates one.
func (b *ConfigBuilder) Name(name string) *ConfigBuilder {
	b.name = name
	return b
}

// Hostname sets the container hostname.
func (b *ConfigBuilder) Hostname(hostname string) *ConfigBuilder {
	b.w.Hostname = hostname
	return b
}

// Domainname sets the container NIS domain name.
func (b *ConfigBuilder) Domainname(domainname string) *ConfigBuilder {
	b.w.Domainname = domainname
	return b
}

// User sets the user (or user:group) the container process runs as.
func (b *ConfigBuilder) User(user string) *ConfigBuilder {
	b.w.User = user
	return b
}

// AttachStdin attaches the container's standard input.
func (b *ConfigBuilder) AttachStdin(v bool) *ConfigBuilder {
	b.w.AttachStdin = v
	return b
}

// AttachStdout attaches the container's standard output.
func (b *ConfigBuilder) AttachStdout(v bool) *ConfigBuilder {
	b.w.AttachStdout = v
	return b
}

// AttachStderr attaches the container's standard error.
func (b *ConfigBuilder) AttachStderr(v bool) *ConfigBuilder {
	b.w.AttachStderr = v
	return b
}

// Tty allocates a pseudo-TTY for the container.
func (b *ConfigBuilder) Tty(v bool) *ConfigBuilder {
	b.w.Tty = v
	return b
}

// OpenStdin keeps the container's standard input open.
func (b *ConfigBuilder) OpenStdin(v bool) *ConfigBuilder {
	b.w.OpenStdin = v
	return b
}

// StdinOnce closes standard input after the first attached client detaches.
func (b *ConfigBuilder) StdinOnce(v bool) *ConfigBuilder {
	b.w.StdinOnce = v
	return b
}

// Env appends environment variables in "KEY=value" form. Repeated calls
// accumulate.
func (b *ConfigBuilder) Env(vars ...string) *ConfigBuilder {
	b.w.Env = append(b.w.Env, vars...)
	return b
}

// Cmd sets the command the container runs. The whole argument vector is
// replaced on each call.
func (b *ConfigBuilder) Cmd(args ...string) *ConfigBuilder {
	b.w.Cmd = args
	return b
}

// Entrypoint sets the container entrypoint, replacing any previous value.
func (b *ConfigBuilder) Entrypoint(args ...string) *ConfigBuilder {
	b.w.Entrypoint = args
	return b
}

// Shell sets the shell used for shell-form commands, replacing any previous
// value.
func (b *ConfigBuilder) Shell(args ...string) *ConfigBuilder {
	b.w.Shell = args
	return b
}

// OnBuild sets the ONBUILD trigger instructions, replacing any previous
// value.
func (b *ConfigBuilder) OnBuild(args ...string) *ConfigBuilder {
	b.w.OnBuild = args
	return b
}

// ExposePort adds a port the container exposes, in "port/proto" form (the
// protocol defaults to tcp). Repeated calls accumulate. The spec is parsed
// and validated by Build.
func (b *ConfigBuilder) ExposePort(port string) *ConfigBuilder {
	b.rawPorts = append(b.rawPorts, port)
	return b
}

// Volume adds a path the engine should mount an anonymous volume at.
// Repeated calls accumulate.
func (b *ConfigBuilder) Volume(path string) *ConfigBuilder {
	if b.w.Volumes == nil {
		b.w.Volumes = map[string]struct{}{}
	}
	b.w.Volumes[path] = struct{}{}
	return b
}

// Label adds a label. Repeated calls accumulate; adding an existing key
// overwrites its value.
func (b *ConfigBuilder) Label(key, value string) *ConfigBuilder {
	if b.w.Labels == nil {
		b.w.Labels = map[string]string{}
	}
	b.w.Labels[key] = value
	return b
}

// Healthcheck sets the health check the engine runs inside the container.
func (b *ConfigBuilder) Healthcheck(hc *HealthConfig) *ConfigBuilder {
	b.w.Healthcheck = hc
	return b
}

// ArgsEscaped marks the command as already escaped (Windows images).
func (b *ConfigBuilder) ArgsEscaped(v bool) *ConfigBuilder {
	b.w.ArgsEscaped = v
	return b
}

// WorkingDir sets the working directory of the container process.
func (b *ConfigBuilder) WorkingDir(dir string) *ConfigBuilder {
	b.w.WorkingDir = dir
	return b
}

// NetworkDisabled disables networking for the container.
func (b *ConfigBuilder) NetworkDisabled(v bool) *ConfigBuilder {
	b.w.NetworkDisabled = v
	return b
}

// MacAddress sets the container MAC address.
func (b *ConfigBuilder) MacAddress(addr string) *ConfigBuilder {
	b.w.MacAddress = addr
	return b
}

// StopSignal sets the signal used to stop the container.
func (b *ConfigBuilder) StopSignal(signal string) *ConfigBuilder {
	b.w.StopSignal = signal
	return b
}

// StopTimeout sets how many seconds the daemon waits for the container to
// stop before killing it.
func (b *ConfigBuilder) StopTimeout(seconds int) *ConfigBuilder {
	b.w.StopTimeout = &seconds
	return b
}

// Build validates the accumulated state and produces an immutable Config.
// It fails with a *BuildError when the image is missing or an exposed port
// spec does not parse. The builder remains usable after Build; the returned
// Config does not alias its state.
func (b *ConfigBuilder) Build() (Config, error) {
	if b.w.Image == "" {
		return Config{}, &BuildError{Field: "image"}
	}

	w := b.w
	w.Env = cloneSlice(w.Env)
	w.Cmd = cloneSlice(w.Cmd)
	w.Entrypoint = cloneSlice(w.Entrypoint)
	w.Shell = cloneSlice(w.Shell)
	w.OnBuild = cloneSlice(w.OnBuild)
	if w.Volumes != nil {
		volumes := make(map[string]struct{}, len(w.Volumes))
		for path := range w.Volumes {
			volumes[path] = struct{}{}
		}
		w.Volumes = volumes
	}
	if w.Labels != nil {
		labels := make(map[string]string, len(w.Labels))
		for k, v := range w.Labels {
			labels[k] = v
		}
		w.Labels = labels
	}
	if w.StopTimeout != nil {
		seconds := *w.StopTimeout
		w.StopTimeout = &seconds
	}
	if w.Healthcheck != nil {
		hc := *w.Healthcheck
		hc.Test = cloneSlice(hc.Test)
		w.Healthcheck = &hc
	}

	if len(b.rawPorts) > 0 {
		set := make(nat.PortSet, len(b.rawPorts))
		for _, raw := range b.rawPorts {
			proto, port := nat.SplitProtoPort(raw)
			p, err := nat.NewPort(proto, port)
			if err != nil {
				return Config{}, &BuildError{Field: "exposedPorts", Reason: err.Error()}
			}
			set[p] = struct{}{}
		}
		w.ExposedPorts = set
	}

	return Config{name: b.name, w: w}, nil
}

func cloneSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// CreateRequest is the body of a container create call: the container
// configuration with optional host-level settings folded in the way the
// engine expects.
type CreateRequest struct {
	Config     Config
	HostConfig *HostConfig
}

type createRequestJSON struct {
	configJSON
	HostConfig *HostConfig `json:"HostConfig,omitempty"`
}

// MarshalJSON flattens the container configuration and nests the host
// configuration under the HostConfig key.
func (r CreateRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(createRequestJSON{
		configJSON: r.Config.w,
		HostConfig: r.HostConfig,
	})
}

// UnmarshalJSON decodes a create request body.
func (r *CreateRequest) UnmarshalJSON(raw []byte) error {
	var body createRequestJSON
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}
	r.Config = Config{w: body.configJSON}
	r.HostConfig = body.HostConfig
	return nil
}
