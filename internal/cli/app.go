package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tuplecats/docker-client/client"
)

// App holds everything the commands share: the engine client, the logger,
// and the output streams.
type App struct {
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger

	client EngineClient
	dial   func(cfg Config) (EngineClient, error)

	flags rootFlags
}

type rootFlags struct {
	host       string
	apiVersion string
	timeout    string
	logLevel   string
	configPath string
}

// NewApp creates an App writing to the given streams. The engine client is
// dialed lazily, once the root flags are parsed.
func NewApp(stdout, stderr io.Writer) *App {
	a := &App{
		stdout: stdout,
		stderr: stderr,
		log: log.NewWithOptions(stderr, log.Options{
			ReportTimestamp: false,
		}),
	}
	a.dial = dialEngine
	return a
}

// Run executes the command line. It is the whole of what main does.
// Cancelling ctx aborts the in-flight engine call.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := NewApp(stdout, stderr)
	defer a.Close()

	root := a.Root()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// Close releases the engine client if one was dialed.
func (a *App) Close() {
	if a.client != nil {
		a.client.Close()
	}
}

// Root assembles the dockhand command tree.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "dockhand",
		Short: "A typed Docker Engine client for the shell",
		Long: `Dockhand drives a Docker daemon over its HTTP API: run and inspect
containers, pull images, and manage volumes and networks.

The daemon address comes from --host, then ~/.dockhand.yaml, then DOCKER_HOST,
then the platform default socket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.host, "host", "", "daemon socket to connect to")
	flags.StringVar(&a.flags.apiVersion, "api-version", "", "pin the API version instead of negotiating")
	flags.StringVar(&a.flags.timeout, "timeout", "", "request timeout, as a Go duration")
	flags.StringVar(&a.flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&a.flags.configPath, "config", "", "config file (default ~/.dockhand.yaml)")

	root.AddCommand(
		a.newVersionCmd(),
		a.newRunCmd(),
		a.newPsCmd(),
		a.newImagesCmd(),
		a.newPullCmd(),
		a.newLogsCmd(),
		a.newStartCmd(),
		a.newStopCmd(),
		a.newRmCmd(),
		a.newInspectCmd(),
		a.newDiffCmd(),
		a.newExportCmd(),
		a.newVolumeCmd(),
		a.newNetworkCmd(),
	)
	return root
}

// setup applies the root flags: log level, config file, engine client.
func (a *App) setup() error {
	a.log.SetLevel(parseLogLevel(a.flags.logLevel))

	if a.client != nil {
		return nil
	}

	cfg, err := loadConfig(a.flags.configPath)
	if err != nil {
		return err
	}
	if err := a.flags.apply(&cfg); err != nil {
		return err
	}

	engine, err := a.dial(cfg)
	if err != nil {
		return fmt.Errorf("failed to create docker client: %w\nMake sure Docker is installed and running (try 'docker ps')", err)
	}
	a.client = engine
	a.log.Debug("engine client ready", "host", engine.DaemonHost(), "version", engine.ClientVersion())
	return nil
}

// apply overlays the flags that were set onto the file config.
func (f rootFlags) apply(cfg *Config) error {
	if f.host != "" {
		cfg.Host = f.host
	}
	if f.apiVersion != "" {
		cfg.APIVersion = f.apiVersion
	}
	if f.timeout != "" {
		timeout, err := time.ParseDuration(f.timeout)
		if err != nil {
			return fmt.Errorf("failed to parse --timeout %q: %w\nUse a Go duration like \"30s\"", f.timeout, err)
		}
		cfg.Timeout = timeout
	}
	return nil
}

// dialEngine builds the real client: environment first, then the config
// file and flags on top. Negotiation is on unless a version is pinned.
func dialEngine(cfg Config) (EngineClient, error) {
	opts := []client.Opt{client.FromEnv}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}
	if cfg.APIVersion != "" {
		opts = append(opts, client.WithVersion(cfg.APIVersion))
	} else {
		opts = append(opts, client.WithAPIVersionNegotiation())
	}
	if cfg.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.Timeout))
	}
	return client.New(opts...)
}

func parseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
