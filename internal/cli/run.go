package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/api/types/container"
)

type runOptions struct {
	specFile   string
	name       string
	env        []string
	labels     []string
	publish    []string
	volumes    []string
	workdir    string
	hostname   string
	user       string
	entrypoint []string
	memory     string
	restart    string
	network    string
	tty        bool
	autoRemove bool
	detach     bool
	pull       bool
}

func (a *App) newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [flags] IMAGE [COMMAND] [ARG...]",
		Short: "Create and start a container",
		Long: `Create a container and start it. Without --detach, run waits for the
container to exit, prints its output, and reports a nonzero exit status as an
error.

The container can also be described by a JSONC spec file:

  dockhand run --file app.jsonc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContainer(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().SetInterspersed(false)

	flags := cmd.Flags()
	flags.StringVarP(&opts.specFile, "file", "f", "", "create the container from a JSONC spec file")
	flags.StringVar(&opts.name, "name", "", "container name (generated when empty)")
	flags.StringArrayVarP(&opts.env, "env", "e", nil, "set an environment variable (KEY=VALUE)")
	flags.StringArrayVarP(&opts.labels, "label", "l", nil, "set a label (key=value)")
	flags.StringArrayVarP(&opts.publish, "publish", "p", nil, "publish a container port ([ip:][host-port:]container-port[/proto])")
	flags.StringArrayVarP(&opts.volumes, "volume", "v", nil, "bind mount a host path (host:container[:options])")
	flags.StringVarP(&opts.workdir, "workdir", "w", "", "working directory inside the container")
	flags.StringVar(&opts.hostname, "hostname", "", "container hostname")
	flags.StringVarP(&opts.user, "user", "u", "", "user (name|uid[:gid])")
	flags.StringArrayVar(&opts.entrypoint, "entrypoint", nil, "override the image entrypoint")
	flags.StringVarP(&opts.memory, "memory", "m", "", "memory limit (such as 512m)")
	flags.StringVar(&opts.restart, "restart", "", "restart policy (no, on-failure[:retries], always, unless-stopped)")
	flags.StringVar(&opts.network, "network", "", "connect the container to a network")
	flags.BoolVarP(&opts.tty, "tty", "t", false, "allocate a pseudo-TTY")
	flags.BoolVar(&opts.autoRemove, "rm", false, "remove the container after it exits")
	flags.BoolVarP(&opts.detach, "detach", "d", false, "start the container and print its ID without waiting")
	flags.BoolVar(&opts.pull, "pull", false, "pull the image before creating the container")
	return cmd
}

// spec folds the flags and positional arguments into a ContainerSpec,
// reading the spec file instead when --file is given.
func (opts runOptions) spec(args []string) (ContainerSpec, error) {
	if opts.specFile != "" {
		if len(args) > 0 {
			return ContainerSpec{}, errors.New("run --file takes no positional arguments")
		}
		return loadSpec(opts.specFile)
	}

	if len(args) == 0 {
		return ContainerSpec{}, errors.New("run requires an image (or --file)")
	}

	labels, err := splitKeyValues(opts.labels)
	if err != nil {
		return ContainerSpec{}, fmt.Errorf("failed to parse --label: %w", err)
	}

	return ContainerSpec{
		Image:      args[0],
		Cmd:        args[1:],
		Name:       opts.name,
		Env:        opts.env,
		Labels:     labels,
		WorkingDir: opts.workdir,
		Hostname:   opts.hostname,
		User:       opts.user,
		Entrypoint: opts.entrypoint,
		Tty:        opts.tty,
		Binds:      opts.volumes,
		Ports:      opts.publish,
		Network:    opts.network,
		Restart:    opts.restart,
		Memory:     opts.memory,
	}, nil
}

func (a *App) runContainer(ctx context.Context, opts runOptions, args []string) error {
	spec, err := opts.spec(args)
	if err != nil {
		return err
	}
	if opts.name != "" {
		spec.Name = opts.name
	}
	if spec.Name == "" {
		spec.Name = generateName()
	}

	config, hostConfig, err := spec.Materialize()
	if err != nil {
		return err
	}

	if opts.pull {
		// Progress goes to stderr so it never mixes with container output.
		if err := a.pullImage(ctx, spec.Image, nil, a.stderr); err != nil {
			return err
		}
	}

	created, err := a.client.ContainerCreate(ctx, config, hostConfig, nil)
	if err != nil {
		return fmt.Errorf("failed to create container %q from image %q: %w", spec.Name, spec.Image, err)
	}
	for _, warning := range created.Warnings {
		a.log.Warn(warning)
	}
	a.log.Debug("container created", "id", created.ID, "name", spec.Name)

	if err := a.client.ContainerStart(ctx, created.ID); err != nil {
		return fmt.Errorf("failed to start container %q: %w", spec.Name, err)
	}

	if opts.detach {
		fmt.Fprintln(a.stdout, created.ID)
		return nil
	}

	waited, err := a.client.ContainerWait(ctx, created.ID, container.WaitConditionNotRunning)
	if err != nil {
		return fmt.Errorf("failed to wait for container %q: %w", spec.Name, err)
	}

	if err := a.dumpLogs(ctx, created.ID, spec.Tty, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	}); err != nil {
		return err
	}

	if opts.autoRemove {
		if err := a.client.ContainerRemove(ctx, created.ID, container.RemoveOptions{Force: true}); err != nil {
			a.log.Warn("failed to remove container", "id", created.ID, "error", err)
		}
	}

	if waited.StatusCode != 0 {
		if waited.Error != nil {
			return fmt.Errorf("container exited with status %d: %s", waited.StatusCode, waited.Error.Message)
		}
		return fmt.Errorf("container exited with status %d", waited.StatusCode)
	}
	return nil
}

// generateName produces a fresh container name for run without --name.
func generateName() string {
	return "dockhand-" + uuid.NewString()[:8]
}
