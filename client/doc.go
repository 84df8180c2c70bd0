/*
Package client is a typed Go client for the Docker Engine API.

A Client is constructed with New and configured through options; the zero
configuration targets the local daemon socket. Construction never dials:
the first request establishes the connection.

	cli, err := client.New(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		// ...
	}
	defer cli.Close()

	config, err := container.WithImage("redis:6").Name("cache").Build()
	if err != nil {
		// ...
	}

	created, err := cli.ContainerCreate(ctx, config, nil, nil)
	if err != nil {
		// ...
	}

	err = cli.ContainerStart(ctx, created.ID)

Request payloads are validated when they are built, never when they are
sent; every daemon response maps to exactly one error class, testable with
the errdefs checkers and the IsErr helpers in this package.
*/
package client
