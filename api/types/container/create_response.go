package container

// CreateResponse is the engine's answer to a container create call.
type CreateResponse struct {
	// ID is the ID of the created container.
	ID string `json:"Id"`

	// Warnings carries non-fatal notes from the daemon about the request.
	Warnings []string `json:"Warnings"`
}
