package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuplecats/docker-client/api/types/container"
)

func TestInspectCommand(t *testing.T) {
	t.Run("prints the container as json", func(t *testing.T) {
		engine := &mockEngine{
			containerInspectFunc: func(ctx context.Context, containerID string, withSize bool) (container.InspectResponse, error) {
				assert.Equal(t, "some-container", containerID)
				assert.False(t, withSize)
				return container.InspectResponse{
					ID:    "some-container-id",
					Name:  "/some-container",
					State: &container.State{Status: "running", Running: true},
				}, nil
			},
		}

		a, stdout, _ := newTestApp(engine)
		err := runCommand(a, "inspect", "some-container")
		require.NoError(t, err)

		var decoded container.InspectResponse
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "some-container-id", decoded.ID)
		require.NotNil(t, decoded.State)
		assert.Equal(t, "running", decoded.State.Status)
	})

	t.Run("the size flag passes through", func(t *testing.T) {
		engine := &mockEngine{
			containerInspectFunc: func(ctx context.Context, containerID string, withSize bool) (container.InspectResponse, error) {
				assert.True(t, withSize)
				return container.InspectResponse{}, nil
			},
		}

		a, _, _ := newTestApp(engine)
		err := runCommand(a, "inspect", "--size", "some-container")
		require.NoError(t, err)
	})

	t.Run("a missing container is an error", func(t *testing.T) {
		engine := &mockEngine{
			containerInspectFunc: func(ctx context.Context, containerID string, withSize bool) (container.InspectResponse, error) {
				return container.InspectResponse{}, errors.New("no such container")
			},
		}

		a, _, _ := newTestApp(engine)
		err := runCommand(a, "inspect", "absent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to inspect container "absent"`)
	})
}
