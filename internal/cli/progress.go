package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// pullMessage is one JSON status message on an image pull stream.
type pullMessage struct {
	Status      string `json:"status"`
	ID          string `json:"id"`
	Progress    string `json:"progress"`
	Error       string `json:"error"`
	ErrorDetail struct {
		Message string `json:"message"`
	} `json:"errorDetail"`
}

// renderPullProgress decodes a pull progress stream and writes one line per
// status message. A message carrying an error aborts the render and becomes
// the returned error.
func renderPullProgress(r io.Reader, out io.Writer) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var msg pullMessage
		if err := decoder.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to decode pull progress: %w\nDocker may have returned malformed JSON", err)
		}

		if msg.Error != "" {
			return errors.New(msg.Error)
		}
		if msg.ErrorDetail.Message != "" {
			return errors.New(msg.ErrorDetail.Message)
		}

		line := msg.Status
		if msg.ID != "" {
			line = msg.ID + ": " + line
		}
		if msg.Progress != "" {
			line += " " + msg.Progress
		}
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
