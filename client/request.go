package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/tuplecats/docker-client/internal/endpoints"
)

// serverResponse carries one daemon response through the mapping layer.
type serverResponse struct {
	body       io.ReadCloser
	header     http.Header
	statusCode int
	reqURL     *url.URL
}

// maxErrorBody bounds how much of a daemon error body is read into the
// error message.
const maxErrorBody = 1 << 20

// call executes one operation: it serializes the payload as JSON, resolves
// the operation's endpoint, runs exactly one round trip and maps the
// response status against the endpoint's success set. On success the
// response body is left open for the caller to consume.
func (cli *Client) call(ctx context.Context, op endpoints.Operation, pathArgs []string, query url.Values, payload any) (serverResponse, error) {
	// Pinging during negotiation must not negotiate again.
	if op != endpoints.Ping {
		cli.maybeNegotiateAPIVersion(ctx)
	}
	ep := endpoints.Resolve(op)

	body, headers, err := encodeBody(payload)
	if err != nil {
		return serverResponse{statusCode: -1}, err
	}

	req, err := cli.buildRequest(ctx, ep, pathArgs, query, body, headers)
	if err != nil {
		return serverResponse{statusCode: -1}, err
	}

	resp, err := cli.doRequest(req)
	if err != nil {
		return resp, err
	}
	return resp, cli.checkResponse(ep, resp)
}

func encodeBody(payload any) (io.Reader, http.Header, error) {
	if payload == nil {
		return nil, nil, nil
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	return bytes.NewReader(buf), headers, nil
}

func (cli *Client) buildRequest(ctx context.Context, ep endpoints.Endpoint, pathArgs []string, query url.Values, body io.Reader, headers http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, ep.Method, cli.getAPIPath(ep, pathArgs, query), body)
	if err != nil {
		return nil, err
	}
	req = cli.addHeaders(req, headers)
	req.URL.Scheme = cli.scheme
	req.URL.Host = cli.addr

	if cli.proto == "unix" || cli.proto == "npipe" {
		// The socket address is not a valid Host header; any meaningful
		// name will do.
		req.Host = "docker"
	}
	return req, nil
}

// getAPIPath returns the versioned request path. Unversioned endpoints
// skip the version prefix.
func (cli *Client) getAPIPath(ep endpoints.Endpoint, pathArgs []string, query url.Values) string {
	p := ep.Format(pathArgs...)

	var apiPath string
	if ep.Unversioned || cli.version == "" {
		apiPath = path.Join(cli.basePath, p)
	} else {
		apiPath = path.Join(cli.basePath, "/v"+strings.TrimPrefix(cli.version, "v"), p)
	}

	u := url.URL{Path: apiPath}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (cli *Client) addHeaders(req *http.Request, headers http.Header) *http.Request {
	for k, v := range cli.customHTTPHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	return req
}

// doRequest runs one round trip and classifies transport failures:
// caller cancellation passes through untouched, timeouts keep their
// net.Error in the chain, dial failures become connection errors and
// anything else is wrapped as an IO failure.
func (cli *Client) doRequest(req *http.Request) (serverResponse, error) {
	serverResp := serverResponse{statusCode: -1, reqURL: req.URL}

	resp, err := cli.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return serverResp, err
		}

		var nErr net.Error
		if errors.As(err, &nErr) && nErr.Timeout() {
			return serverResp, fmt.Errorf("request to the Docker daemon at %s timed out: %w", cli.host, err)
		}

		var opErr *net.OpError
		if errors.As(err, &opErr) {
			if os.IsPermission(opErr.Err) {
				return serverResp, fmt.Errorf("permission denied while trying to connect to the Docker daemon socket at %s: %w", cli.host, err)
			}
			return serverResp, connectionFailed(cli.host, err)
		}

		if errors.Is(err, os.ErrNotExist) {
			return serverResp, connectionFailed(cli.host, err)
		}

		return serverResp, fmt.Errorf("error during connect: %w", err)
	}

	if resp != nil {
		serverResp.statusCode = resp.StatusCode
		serverResp.body = resp.Body
		serverResp.header = resp.Header
	}
	return serverResp, nil
}

// checkResponse maps a response status against the endpoint's success set.
// A status outside the set consumes the body and produces an apiError
// classified per the daemon error taxonomy.
func (cli *Client) checkResponse(ep endpoints.Endpoint, resp serverResponse) error {
	if ep.IsSuccess(resp.statusCode) {
		return nil
	}

	var message string
	if resp.body != nil {
		raw, err := io.ReadAll(io.LimitReader(resp.body, maxErrorBody))
		if err == nil {
			message = parseErrorMessage(resp.header.Get("Content-Type"), raw)
		}
	}
	if message == "" {
		message = fmt.Sprintf("request returned %s for API route and version %s, check if the server supports the requested API version",
			http.StatusText(resp.statusCode), resp.reqURL)
	}

	return apiError{status: resp.statusCode, message: message, kind: classify(resp.statusCode)}
}

// parseErrorMessage extracts the daemon's message from an error body: the
// documented {"message": ...} JSON when present, the trimmed raw body
// otherwise.
func parseErrorMessage(contentType string, raw []byte) string {
	if strings.HasPrefix(contentType, "application/json") {
		var errorResponse struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &errorResponse); err == nil && errorResponse.Message != "" {
			return strings.TrimSpace(errorResponse.Message)
		}
	}
	return strings.TrimSpace(string(raw))
}

// decode deserializes a success body, reporting failures as
// ErrMalformedResponse.
func decode(resp serverResponse, v any) error {
	if err := json.NewDecoder(resp.body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// ensureReaderClosed drains up to 512 bytes and closes the body so the
// transport can reuse the connection.
func ensureReaderClosed(response serverResponse) {
	if response.body != nil {
		io.CopyN(io.Discard, response.body, 512)
		response.body.Close()
	}
}
