package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuplecats/docker-client/api/types/container"
)

func TestContainerLogs(t *testing.T) {
	t.Run("options become query parameters", func(t *testing.T) {
		var captured *http.Request
		cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
			captured = req
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("")),
			}, nil
		})

		body, err := cli.ContainerLogs(context.Background(), "some-id", container.LogsOptions{
			ShowStdout: true,
			ShowStderr: true,
			Timestamps: true,
			Follow:     true,
			Since:      "2026-01-02T15:04:05Z",
			Tail:       "50",
		})
		require.NoError(t, err)
		defer body.Close()

		query := captured.URL.Query()
		assert.Equal(t, "1", query.Get("stdout"))
		assert.Equal(t, "1", query.Get("stderr"))
		assert.Equal(t, "1", query.Get("timestamps"))
		assert.Equal(t, "1", query.Get("follow"))
		assert.Equal(t, "2026-01-02T15:04:05Z", query.Get("since"))
		assert.Equal(t, "50", query.Get("tail"))
	})

	t.Run("hands the stream to the caller", func(t *testing.T) {
		cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("some log line\n")),
			}, nil
		})

		body, err := cli.ContainerLogs(context.Background(), "some-id", container.LogsOptions{ShowStdout: true})
		require.NoError(t, err)
		defer body.Close()

		out, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "some log line\n", string(out))
	})

	t.Run("a missing container surfaces before the stream opens", func(t *testing.T) {
		cli := newTestClient(t, errorMock(http.StatusNotFound, "No such container: some-id"))

		_, err := cli.ContainerLogs(context.Background(), "some-id", container.LogsOptions{ShowStdout: true})
		require.Error(t, err)
		assert.True(t, IsErrNotFound(err))
	})
}
