package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// transportFunc lets a function stand in for the HTTP transport.
type transportFunc func(*http.Request) (*http.Response, error)

func (tf transportFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return tf(req)
}

func newMockClient(doer func(*http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{Transport: transportFunc(doer)}
}

// newTestClient builds a client over a scripted doer. The mock client is
// applied last so host options can still configure a real transport first.
func newTestClient(t *testing.T, doer func(*http.Request) (*http.Response, error), ops ...Opt) *Client {
	t.Helper()
	cli, err := New(append(ops, WithHTTPClient(newMockClient(doer)))...)
	require.NoError(t, err)
	return cli
}

// errorMock answers every request with a daemon-shaped JSON error body.
func errorMock(statusCode int, message string) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		body, err := json.Marshal(struct {
			Message string `json:"message"`
		}{Message: message})
		if err != nil {
			return nil, err
		}

		header := http.Header{}
		header.Set("Content-Type", "application/json")
		return &http.Response{
			StatusCode: statusCode,
			Header:     header,
			Body:       io.NopCloser(bytes.NewReader(body)),
		}, nil
	}
}

// jsonMock answers every request with v serialized as the body.
func jsonMock(statusCode int, v any) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		body, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}

		header := http.Header{}
		header.Set("Content-Type", "application/json")
		return &http.Response{
			StatusCode: statusCode,
			Header:     header,
			Body:       io.NopCloser(bytes.NewReader(body)),
		}, nil
	}
}

// statusMock answers every request with a bare status and empty body.
func statusMock(statusCode int) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	}
}
