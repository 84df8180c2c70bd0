package network_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuplecats/docker-client/api/types/network"
)

func TestInspect(t *testing.T) {
	t.Run("decodes an engine response", func(t *testing.T) {
		payload := `{
			"Name": "bridge",
			"Id": "f2de39df4171b0dc801e8002d1d999b77256983dfc63041c0f34030aa3977566",
			"Created": "2020-01-15T06:34:39.07143599Z",
			"Scope": "local",
			"Driver": "bridge",
			"EnableIPv6": false,
			"IPAM": {
				"Driver": "default",
				"Config": [{"Subnet": "172.17.0.0/16", "Gateway": "172.17.0.1"}]
			},
			"Internal": false,
			"Attachable": false,
			"Ingress": false,
			"Containers": {
				"3386a527aa08b37ea9232cbcace2d2458d49f44bb05a6b775fba7ddd40d8f92c": {
					"Name": "some-container",
					"EndpointID": "647c12443e91faf0fd508b6edfe59c30b642abb60dfab890b4bdccee38750bc1",
					"MacAddress": "02:42:ac:11:00:02",
					"IPv4Address": "172.17.0.2/16",
					"IPv6Address": ""
				}
			},
			"Options": {"com.docker.network.bridge.default_bridge": "true"},
			"Labels": {}
		}`

		var inspect network.Inspect
		require.NoError(t, json.Unmarshal([]byte(payload), &inspect))
		require.Equal(t, "bridge", inspect.Name)
		require.Equal(t, "local", inspect.Scope)
		require.Equal(t, "default", inspect.IPAM.Driver)
		require.Len(t, inspect.IPAM.Config, 1)
		require.Equal(t, "172.17.0.0/16", inspect.IPAM.Config[0].Subnet)

		resource := inspect.Containers["3386a527aa08b37ea9232cbcace2d2458d49f44bb05a6b775fba7ddd40d8f92c"]
		require.Equal(t, "some-container", resource.Name)
		require.Equal(t, "172.17.0.2/16", resource.IPv4Address)
	})
}
