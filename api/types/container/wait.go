package container

// WaitExitError is the error detail of a wait response, set when the
// daemon could not determine the exit outcome.
type WaitExitError struct {
	Message string `json:"Message,omitempty"`
}

// WaitResponse is the engine's answer to a container wait call.
type WaitResponse struct {
	// StatusCode is the container's exit code.
	StatusCode int64 `json:"StatusCode"`

	Error *WaitExitError `json:"Error,omitempty"`
}
