package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/containerd/errdefs"
)

// ErrMalformedResponse reports a success status whose body could not be
// decoded.
var ErrMalformedResponse = errors.New("malformed response from daemon")

// errConnectionFailed reports that the daemon socket could not be reached.
type errConnectionFailed struct {
	host  string
	cause error
}

func (e errConnectionFailed) Error() string {
	if e.host == "" {
		return "Cannot connect to the Docker daemon. Is the docker daemon running on this host?"
	}
	return fmt.Sprintf("Cannot connect to the Docker daemon at %s. Is the docker daemon running?", e.host)
}

func (e errConnectionFailed) Unwrap() error { return e.cause }

func connectionFailed(host string, cause error) error {
	return errConnectionFailed{host: host, cause: cause}
}

// IsErrConnectionFailed reports whether err means the daemon could not be
// reached.
func IsErrConnectionFailed(err error) bool {
	var target errConnectionFailed
	return errors.As(err, &target)
}

// apiError is an error response from the daemon. It unwraps to the errdefs
// sentinel its status classifies as, so callers can test it with
// errdefs.IsNotFound, errdefs.IsConflict and friends.
type apiError struct {
	status  int
	message string
	kind    error
}

func (e apiError) Error() string {
	return "Error response from daemon: " + e.message
}

func (e apiError) Unwrap() error { return e.kind }

// objectNotFoundError is returned before dispatch when a required object
// identifier is empty.
type objectNotFoundError struct {
	object string
	id     string
}

func (e objectNotFoundError) Error() string {
	return fmt.Sprintf("Error: No such %s: %s", e.object, e.id)
}

func (e objectNotFoundError) Unwrap() error { return errdefs.ErrNotFound }

// IsErrNotFound reports whether err is a daemon not-found error.
func IsErrNotFound(err error) bool {
	return errdefs.IsNotFound(err)
}

// classify maps a non-success HTTP status to its errdefs sentinel. The
// mapping is total: any status not named below is ErrUnknown.
func classify(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return errdefs.ErrInvalidArgument
	case status == http.StatusUnauthorized:
		return errdefs.ErrUnauthenticated
	case status == http.StatusForbidden:
		return errdefs.ErrPermissionDenied
	case status == http.StatusNotFound:
		return errdefs.ErrNotFound
	case status == http.StatusConflict:
		return errdefs.ErrConflict
	case status == http.StatusNotModified:
		return errdefs.ErrNotModified
	case status == http.StatusTooManyRequests:
		return errdefs.ErrResourceExhausted
	case status >= http.StatusInternalServerError:
		return errdefs.ErrInternal
	default:
		return errdefs.ErrUnknown
	}
}
