package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/docker/go-connections/sockets"

	"github.com/tuplecats/docker-client/internal/versions"
)

const (
	// DefaultAPIVersion is the engine API version the client speaks.
	DefaultAPIVersion = "1.40"

	// fallbackAPIVersion is assumed during negotiation when the daemon
	// does not report a version (engines older than 1.25).
	fallbackAPIVersion = "1.24"
)

// Client talks to a Docker engine. It is safe for concurrent use; the one
// guarded mutation is lazy API version negotiation. Construction never
// dials, the first request does.
type Client struct {
	// scheme sets the scheme for the client, i.e. http or https.
	scheme string
	// host holds the server address to connect to, as configured.
	host string
	// proto holds the client protocol, i.e. unix, tcp or npipe.
	proto string
	// addr holds the client address: a socket path or a host:port.
	addr string
	// basePath holds the path to prepend to the requests.
	basePath string

	client *http.Client

	version          string
	manualOverride   bool
	negotiateVersion bool
	negotiated       bool
	negotiateLock    sync.Mutex

	customHTTPHeaders map[string]string
}

// New returns a Client configured by the given options. Without options it
// targets the platform's default daemon socket speaking DefaultAPIVersion.
func New(ops ...Opt) (*Client, error) {
	hostURL, err := ParseHostURL(DefaultDockerHost)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{}
	if err := sockets.ConfigureTransport(transport, hostURL.Scheme, hostURL.Host); err != nil {
		return nil, err
	}

	c := &Client{
		host:    DefaultDockerHost,
		version: DefaultAPIVersion,
		client:  &http.Client{Transport: transport},
		proto:   hostURL.Scheme,
		addr:    hostURL.Host,
	}

	for _, op := range ops {
		if err := op(c); err != nil {
			return nil, err
		}
	}

	if c.scheme == "" {
		c.scheme = "http"
		if tr, ok := c.client.Transport.(*http.Transport); ok && tr.TLSClientConfig != nil {
			c.scheme = "https"
		}
	}

	return c, nil
}

// ParseHostURL parses a url string, validates the string is a host url,
// and returns the parsed URL.
func ParseHostURL(host string) (*url.URL, error) {
	proto, addr, ok := strings.Cut(host, "://")
	if !ok || addr == "" {
		return nil, fmt.Errorf("unable to parse docker host %q", host)
	}

	var basePath string
	if proto == "tcp" {
		parsed, err := url.Parse("tcp://" + addr)
		if err != nil {
			return nil, err
		}
		addr = parsed.Host
		basePath = parsed.Path
	}
	return &url.URL{
		Scheme: proto,
		Host:   addr,
		Path:   basePath,
	}, nil
}

// Close puts the client's transport idle connections to rest.
func (cli *Client) Close() error {
	if t, ok := cli.client.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
	return nil
}

// DaemonHost returns the host address used by the client.
func (cli *Client) DaemonHost() string {
	return cli.host
}

// ClientVersion returns the API version the client currently speaks. After
// negotiation this may be lower than the configured version.
func (cli *Client) ClientVersion() string {
	return cli.version
}

// NewVersionError returns an error when the client's current API version
// is below the version a feature requires.
func (cli *Client) NewVersionError(apiRequired, feature string) error {
	if cli.version != "" && versions.LessThan(cli.version, apiRequired) {
		return fmt.Errorf("%q requires API version %s, but the Docker daemon API version is %s", feature, apiRequired, cli.version)
	}
	return nil
}

// HTTPClient returns a copy of the HTTP client bound to the daemon.
func (cli *Client) HTTPClient() *http.Client {
	c := *cli.client
	return &c
}

// NegotiateAPIVersion queries the daemon and downgrades the client's
// version when the daemon is older. A manually configured version wins and
// disables negotiation.
func (cli *Client) NegotiateAPIVersion(ctx context.Context) {
	if cli.manualOverride {
		return
	}
	cli.negotiateLock.Lock()
	defer cli.negotiateLock.Unlock()

	// Error responses still carry the version headers, so negotiate even
	// when the ping fails.
	ping, _ := cli.Ping(ctx)
	cli.negotiateAPIVersionPing(ping)
	if cli.negotiateVersion {
		cli.negotiated = true
	}
}

func (cli *Client) maybeNegotiateAPIVersion(ctx context.Context) {
	if !cli.negotiateVersion || cli.manualOverride {
		return
	}
	cli.negotiateLock.Lock()
	defer cli.negotiateLock.Unlock()
	if cli.negotiated {
		return
	}

	ping, _ := cli.Ping(ctx)
	cli.negotiateAPIVersionPing(ping)
	cli.negotiated = true
}

// negotiateAPIVersionPing is called with negotiateLock held.
func (cli *Client) negotiateAPIVersionPing(ping PingResponse) {
	if ping.APIVersion == "" {
		ping.APIVersion = fallbackAPIVersion
	}
	if cli.version == "" {
		cli.version = DefaultAPIVersion
	}
	if versions.LessThan(ping.APIVersion, cli.version) {
		cli.version = ping.APIVersion
	}
}
