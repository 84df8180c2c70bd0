package client

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/docker/go-connections/sockets"
)

// Opt configures a Client during New.
type Opt func(*Client) error

// FromEnv configures the client from the environment: DOCKER_HOST for the
// daemon address and DOCKER_API_VERSION to pin the API version. Unset
// variables leave the defaults in place.
func FromEnv(c *Client) error {
	ops := []Opt{
		WithHostFromEnv(),
		WithVersionFromEnv(),
	}
	for _, op := range ops {
		if err := op(c); err != nil {
			return err
		}
	}
	return nil
}

// WithHost overrides the daemon address. unix://, tcp:// and npipe://
// schemes are understood.
func WithHost(host string) Opt {
	return func(c *Client) error {
		hostURL, err := ParseHostURL(host)
		if err != nil {
			return err
		}
		c.host = host
		c.proto = hostURL.Scheme
		c.addr = hostURL.Host
		c.basePath = hostURL.Path
		if transport, ok := c.client.Transport.(*http.Transport); ok {
			return sockets.ConfigureTransport(transport, c.proto, c.addr)
		}
		return fmt.Errorf("cannot apply host to transport: %T", c.client.Transport)
	}
}

// WithHostFromEnv applies the DOCKER_HOST environment variable when set.
func WithHostFromEnv() Opt {
	return func(c *Client) error {
		if host := os.Getenv("DOCKER_HOST"); host != "" {
			return WithHost(host)(c)
		}
		return nil
	}
}

// WithHTTPClient replaces the HTTP client used to reach the daemon.
func WithHTTPClient(client *http.Client) Opt {
	return func(c *Client) error {
		if client != nil {
			c.client = client
		}
		return nil
	}
}

// WithTimeout bounds the total duration of every request.
func WithTimeout(timeout time.Duration) Opt {
	return func(c *Client) error {
		c.client.Timeout = timeout
		return nil
	}
}

// WithHTTPHeaders sets headers attached to every request.
func WithHTTPHeaders(headers map[string]string) Opt {
	return func(c *Client) error {
		c.customHTTPHeaders = headers
		return nil
	}
}

// WithVersion pins the API version and disables negotiation. An empty
// version is ignored.
func WithVersion(version string) Opt {
	return func(c *Client) error {
		if version != "" {
			c.version = strings.TrimPrefix(version, "v")
			c.manualOverride = true
		}
		return nil
	}
}

// WithVersionFromEnv applies the DOCKER_API_VERSION environment variable
// when set.
func WithVersionFromEnv() Opt {
	return func(c *Client) error {
		return WithVersion(os.Getenv("DOCKER_API_VERSION"))(c)
	}
}

// WithAPIVersionNegotiation makes the client downgrade its API version to
// the daemon's before the first request. Negotiation runs at most once and
// a version pinned with WithVersion wins over it.
func WithAPIVersionNegotiation() Opt {
	return func(c *Client) error {
		c.negotiateVersion = true
		return nil
	}
}
