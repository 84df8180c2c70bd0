package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuplecats/docker-client/api/types/container"
	"github.com/tuplecats/docker-client/api/types/filters"
)

func TestContainerList(t *testing.T) {
	t.Run("zero options send no query", func(t *testing.T) {
		var captured *http.Request
		cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
			captured = req
			return jsonMock(http.StatusOK, []container.Summary{})(req)
		})

		_, err := cli.ContainerList(context.Background(), container.ListOptions{})
		require.NoError(t, err)
		assert.Equal(t, "/v"+DefaultAPIVersion+"/containers/json", captured.URL.Path)
		assert.Empty(t, captured.URL.RawQuery)
	})

	t.Run("options become query parameters", func(t *testing.T) {
		var captured *http.Request
		cli := newTestClient(t, func(req *http.Request) (*http.Response, error) {
			captured = req
			return jsonMock(http.StatusOK, []container.Summary{})(req)
		})

		args := filters.NewArgs(filters.Arg("label", "purpose=test"))
		_, err := cli.ContainerList(context.Background(), container.ListOptions{
			All:     true,
			Limit:   5,
			Size:    true,
			Filters: args,
		})
		require.NoError(t, err)

		query := captured.URL.Query()
		assert.Equal(t, "1", query.Get("all"))
		assert.Equal(t, "5", query.Get("limit"))
		assert.Equal(t, "1", query.Get("size"))
		assert.JSONEq(t, `{"label": {"purpose=test": true}}`, query.Get("filters"))
	})

	t.Run("decodes the daemon listing", func(t *testing.T) {
		cli := newTestClient(t, jsonMock(http.StatusOK, []container.Summary{
			{ID: "some-id", Image: "alpine", State: "running", Names: []string{"/some-container"}},
		}))

		containers, err := cli.ContainerList(context.Background(), container.ListOptions{})
		require.NoError(t, err)
		require.Len(t, containers, 1)
		assert.Equal(t, "some-id", containers[0].ID)
		assert.Equal(t, "running", containers[0].State)
	})
}
