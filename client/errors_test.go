package client

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuplecats/docker-client/api/types/container"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		doc        string
		statusCode int
		check      func(error) bool
	}{
		{doc: "bad request", statusCode: http.StatusBadRequest, check: errdefs.IsInvalidArgument},
		{doc: "unauthorized", statusCode: http.StatusUnauthorized, check: errdefs.IsUnauthorized},
		{doc: "forbidden", statusCode: http.StatusForbidden, check: errdefs.IsPermissionDenied},
		{doc: "not found", statusCode: http.StatusNotFound, check: errdefs.IsNotFound},
		{doc: "conflict", statusCode: http.StatusConflict, check: errdefs.IsConflict},
		{doc: "too many requests", statusCode: http.StatusTooManyRequests, check: errdefs.IsResourceExhausted},
		{doc: "internal error", statusCode: http.StatusInternalServerError, check: errdefs.IsInternal},
		{doc: "bad gateway", statusCode: http.StatusBadGateway, check: errdefs.IsInternal},
		{doc: "teapot", statusCode: http.StatusTeapot, check: errdefs.IsUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			cli := newTestClient(t, errorMock(tc.statusCode, "some message"))
			_, err := cli.ContainerInspect(context.Background(), "some-id", false)
			require.Error(t, err)
			assert.True(t, tc.check(err))
			assert.EqualError(t, err, "Error response from daemon: some message")
		})
	}
}

func TestNotModified(t *testing.T) {
	t.Run("is an error where it is not a success", func(t *testing.T) {
		cli := newTestClient(t, errorMock(http.StatusNotModified, "not modified"))
		_, err := cli.ContainerInspect(context.Background(), "some-id", false)
		require.Error(t, err)
		assert.True(t, errdefs.IsNotModified(err))
	})

	t.Run("is a success where the endpoint says so", func(t *testing.T) {
		cli := newTestClient(t, statusMock(http.StatusNotModified))
		err := cli.ContainerStart(context.Background(), "some-id")
		require.NoError(t, err)
	})
}

func TestUnexpectedStatus(t *testing.T) {
	// 204 is a success elsewhere but not for create, which documents 201.
	cli := newTestClient(t, statusMock(http.StatusNoContent))

	config, err := container.WithImage("alpine").Build()
	require.NoError(t, err)

	_, err = cli.ContainerCreate(context.Background(), config, nil, nil)
	require.Error(t, err)
	assert.True(t, errdefs.IsUnknown(err))
}

func TestPlainTextErrorBody(t *testing.T) {
	cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Header:     http.Header{"Content-Type": []string{"text/plain"}},
			Body:       io.NopCloser(strings.NewReader("something broke\n")),
		}, nil
	})

	_, err := cli.ContainerInspect(context.Background(), "some-id", false)
	require.EqualError(t, err, "Error response from daemon: something broke")
	assert.True(t, errdefs.IsInternal(err))
}

func TestEmptyErrorBody(t *testing.T) {
	cli := newTestClient(t, statusMock(http.StatusInternalServerError))
	_, err := cli.ContainerInspect(context.Background(), "some-id", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request returned Internal Server Error for API route and version")
	assert.Contains(t, err.Error(), "check if the server supports the requested API version")
}

func TestMalformedSuccessBody(t *testing.T) {
	cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader("not json")),
		}, nil
	})

	_, err := cli.ContainerInspect(context.Background(), "some-id", false)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestConnectionFailed(t *testing.T) {
	cli, err := New(WithHost("unix://" + filepath.Join(t.TempDir(), "absent.sock")))
	require.NoError(t, err)

	_, err = cli.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, IsErrConnectionFailed(err))
	assert.False(t, errdefs.IsNotFound(err))
	assert.Contains(t, err.Error(), "Cannot connect to the Docker daemon at")
}

func TestEmptyIdentifier(t *testing.T) {
	// The mock transport trips if a request ever goes out.
	cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		t.Fatal("request dispatched for an empty identifier")
		return nil, nil
	})

	t.Run("container", func(t *testing.T) {
		_, err := cli.ContainerInspect(context.Background(), "", false)
		require.EqualError(t, err, "Error: No such container: ")
		assert.True(t, IsErrNotFound(err))
	})

	t.Run("volume", func(t *testing.T) {
		_, err := cli.VolumeInspect(context.Background(), "")
		require.EqualError(t, err, "Error: No such volume: ")
		assert.True(t, IsErrNotFound(err))
	})

	t.Run("network", func(t *testing.T) {
		err := cli.NetworkConnect(context.Background(), "", "some-container", nil)
		require.EqualError(t, err, "Error: No such network: ")
		assert.True(t, IsErrNotFound(err))
	})

	t.Run("exec instance", func(t *testing.T) {
		_, err := cli.ExecInspect(context.Background(), "")
		require.EqualError(t, err, "Error: No such exec instance: ")
		assert.True(t, IsErrNotFound(err))
	})
}
