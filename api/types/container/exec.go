package container

import "encoding/json"

// ExecRequest is a validated exec configuration, obtained through an
// ExecBuilder.
type ExecRequest struct {
	w execJSON
}

type execJSON struct {
	User         string   `json:"User,omitempty"`
	Privileged   bool     `json:"Privileged,omitempty"`
	Tty          bool     `json:"Tty,omitempty"`
	AttachStdin  bool     `json:"AttachStdin,omitempty"`
	AttachStdout bool     `json:"AttachStdout,omitempty"`
	AttachStderr bool     `json:"AttachStderr,omitempty"`
	DetachKeys   string   `json:"DetachKeys,omitempty"`
	Env          []string `json:"Env,omitempty"`
	WorkingDir   string   `json:"WorkingDir,omitempty"`
	Cmd          []string `json:"Cmd"`
}

// Cmd returns a copy of the command the exec process runs.
func (r ExecRequest) Cmd() []string { return cloneSlice(r.w.Cmd) }

// Tty reports whether the exec process gets a pseudo-TTY.
func (r ExecRequest) Tty() bool { return r.w.Tty }

// MarshalJSON encodes the exec configuration in the engine's wire shape.
func (r ExecRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.w)
}

// ExecBuilder accumulates the configuration of an exec process. Build is
// the single validation point; at least one command argument is required.
type ExecBuilder struct {
	w execJSON
}

// NewExecBuilder returns an empty exec builder.
func NewExecBuilder() *ExecBuilder {
	return &ExecBuilder{}
}

// Cmd appends arguments to the command the exec process runs. Repeated
// calls accumulate.
func (b *ExecBuilder) Cmd(args ...string) *ExecBuilder {
	b.w.Cmd = append(b.w.Cmd, args...)
	return b
}

// User sets the user the exec process runs as.
func (b *ExecBuilder) User(user string) *ExecBuilder {
	b.w.User = user
	return b
}

// Privileged runs the exec process with extended privileges.
func (b *ExecBuilder) Privileged(v bool) *ExecBuilder {
	b.w.Privileged = v
	return b
}

// Tty allocates a pseudo-TTY for the exec process.
func (b *ExecBuilder) Tty(v bool) *ExecBuilder {
	b.w.Tty = v
	return b
}

// AttachStdin attaches the exec process's standard input.
func (b *ExecBuilder) AttachStdin(v bool) *ExecBuilder {
	b.w.AttachStdin = v
	return b
}

// AttachStdout attaches the exec process's standard output.
func (b *ExecBuilder) AttachStdout(v bool) *ExecBuilder {
	b.w.AttachStdout = v
	return b
}

// AttachStderr attaches the exec process's standard error.
func (b *ExecBuilder) AttachStderr(v bool) *ExecBuilder {
	b.w.AttachStderr = v
	return b
}

// DetachKeys overrides the key sequence that detaches from the exec
// process.
func (b *ExecBuilder) DetachKeys(keys string) *ExecBuilder {
	b.w.DetachKeys = keys
	return b
}

// Env appends environment variables in "KEY=value" form. Repeated calls
// accumulate.
func (b *ExecBuilder) Env(vars ...string) *ExecBuilder {
	b.w.Env = append(b.w.Env, vars...)
	return b
}

// WorkingDir sets the working directory of the exec process.
func (b *ExecBuilder) WorkingDir(dir string) *ExecBuilder {
	b.w.WorkingDir = dir
	return b
}

// Build validates the accumulated state and produces an ExecRequest. It
// fails with a *BuildError when no command is set.
func (b *ExecBuilder) Build() (ExecRequest, error) {
	if len(b.w.Cmd) == 0 {
		return ExecRequest{}, &BuildError{Field: "cmd"}
	}
	w := b.w
	w.Cmd = cloneSlice(w.Cmd)
	w.Env = cloneSlice(w.Env)
	return ExecRequest{w: w}, nil
}

// ExecCreateResponse is the engine's answer to an exec create call.
type ExecCreateResponse struct {
	ID string `json:"Id"`
}

// ExecInspect is the state of an exec process as reported by the engine.
// ExitCode is nil while the process is still running.
type ExecInspect struct {
	ID          string `json:"ID"`
	ContainerID string `json:"ContainerID"`
	Running     bool   `json:"Running"`
	ExitCode    *int   `json:"ExitCode"`
	Pid         int    `json:"Pid"`
	CanRemove   bool   `json:"CanRemove"`
	DetachKeys  string `json:"DetachKeys"`
	OpenStdin   bool   `json:"OpenStdin"`
	OpenStdout  bool   `json:"OpenStdout"`
	OpenStderr  bool   `json:"OpenStderr"`
}
