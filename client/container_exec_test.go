package client

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuplecats/docker-client/api/types/container"
)

func TestContainerExecCreate(t *testing.T) {
	t.Run("posts the exec config and decodes the identifier", func(t *testing.T) {
		var captured *http.Request
		var body []byte
		cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
			captured = req
			var err error
			body, err = io.ReadAll(req.Body)
			require.NoError(t, err)
			return jsonMock(http.StatusCreated, container.ExecCreateResponse{ID: "some-exec-id"})(req)
		})

		exec, err := container.NewExecBuilder().
			Cmd("ps", "aux").
			AttachStdout(true).
			Build()
		require.NoError(t, err)

		resp, err := cli.ContainerExecCreate(context.Background(), "some-id", exec)
		require.NoError(t, err)

		assert.Equal(t, "/v"+DefaultAPIVersion+"/containers/some-id/exec", captured.URL.Path)
		assert.JSONEq(t, `{"Cmd": ["ps", "aux"], "AttachStdout": true}`, string(body))
		assert.Equal(t, "some-exec-id", resp.ID)
	})

	t.Run("a stopped container refuses exec", func(t *testing.T) {
		cli := newTestClient(t, errorMock(http.StatusConflict, "Container some-id is not running"))

		exec, err := container.NewExecBuilder().Cmd("true").Build()
		require.NoError(t, err)

		_, err = cli.ContainerExecCreate(context.Background(), "some-id", exec)
		require.EqualError(t, err, "Error response from daemon: Container some-id is not running")
	})
}

func TestExecInspectCall(t *testing.T) {
	exitCode := 0
	cli := newTestClient(t, jsonMock(http.StatusOK, container.ExecInspect{
		ID:          "some-exec-id",
		ContainerID: "some-id",
		Running:     false,
		ExitCode:    &exitCode,
	}))

	inspect, err := cli.ExecInspect(context.Background(), "some-exec-id")
	require.NoError(t, err)
	assert.Equal(t, "some-exec-id", inspect.ID)
	assert.Equal(t, "some-id", inspect.ContainerID)
	assert.False(t, inspect.Running)
	require.NotNil(t, inspect.ExitCode)
	assert.Equal(t, 0, *inspect.ExitCode)
}
