package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuplecats/docker-client/api/types/image"
)

func TestImagePull(t *testing.T) {
	progressMock := func(captured **http.Request) func(*http.Request) (*http.Response, error) {
		return func(req *http.Request) (*http.Response, error) {
			*captured = req
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"status": "Pulling from library/alpine"}` + "\n")),
			}, nil
		}
	}

	t.Run("a bare name pulls latest", func(t *testing.T) {
		var captured *http.Request
		cli := newTestClient(t, progressMock(&captured))

		body, err := cli.ImagePull(context.Background(), "alpine", image.PullOptions{})
		require.NoError(t, err)
		defer body.Close()

		query := captured.URL.Query()
		assert.Equal(t, "/v"+DefaultAPIVersion+"/images/create", captured.URL.Path)
		assert.Equal(t, "alpine", query.Get("fromImage"))
		assert.Equal(t, "latest", query.Get("tag"))
	})

	t.Run("an explicit tag is kept", func(t *testing.T) {
		var captured *http.Request
		cli := newTestClient(t, progressMock(&captured))

		body, err := cli.ImagePull(context.Background(), "alpine:3.20", image.PullOptions{})
		require.NoError(t, err)
		defer body.Close()

		assert.Equal(t, "3.20", captured.URL.Query().Get("tag"))
	})

	t.Run("a digest pins the pull", func(t *testing.T) {
		var captured *http.Request
		cli := newTestClient(t, progressMock(&captured))

		digest := "sha256:ec14c7992a97fc11425907e908340c6c3d6ff602f5f13d899e6b7027c9b4133a"
		body, err := cli.ImagePull(context.Background(), "alpine@"+digest, image.PullOptions{})
		require.NoError(t, err)
		defer body.Close()

		query := captured.URL.Query()
		assert.Equal(t, "alpine", query.Get("fromImage"))
		assert.Equal(t, digest, query.Get("tag"))
	})

	t.Run("an invalid reference never reaches the daemon", func(t *testing.T) {
		cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
			t.Fatal("request dispatched for an invalid reference")
			return nil, nil
		})

		_, err := cli.ImagePull(context.Background(), "UPPERCASE/forbidden", image.PullOptions{})
		require.Error(t, err)
	})

	t.Run("streams the progress messages", func(t *testing.T) {
		var captured *http.Request
		cli := newTestClient(t, progressMock(&captured))

		body, err := cli.ImagePull(context.Background(), "alpine", image.PullOptions{})
		require.NoError(t, err)
		defer body.Close()

		out, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Contains(t, string(out), "Pulling from library/alpine")
	})
}

func TestImageList(t *testing.T) {
	cli := newTestClient(t, jsonMock(http.StatusOK, []image.Summary{
		{ID: "sha256:0fe33a180fc9", RepoTags: []string{"alpine:latest"}, Size: 7342148},
	}))

	images, err := cli.ImageList(context.Background(), image.ListOptions{})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, []string{"alpine:latest"}, images[0].RepoTags)
}
