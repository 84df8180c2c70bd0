package client

import (
	"context"
	"io"
	"net/url"

	"github.com/distribution/reference"

	"github.com/tuplecats/docker-client/api/types/image"
	"github.com/tuplecats/docker-client/internal/endpoints"
)

// ImagePull asks the daemon to pull an image and returns the progress
// stream, a sequence of JSON status messages. The caller must drain and
// close the reader; the pull is complete when the stream ends. The
// reference is validated and normalized before dispatch.
func (cli *Client) ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
	ref, err := reference.ParseNormalizedNamed(refStr)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("fromImage", reference.FamiliarName(ref))
	query.Set("tag", getAPITagFromNamedRef(ref))
	if options.Platform != nil {
		query.Set("platform", formatPlatform(*options.Platform))
	}

	resp, err := cli.call(ctx, endpoints.ImagePull, nil, query, nil)
	if err != nil {
		ensureReaderClosed(resp)
		return nil, err
	}
	return resp.body, nil
}

// getAPITagFromNamedRef returns the tag to send to the daemon: the digest
// when the reference carries one, which pins the pull, otherwise the tag,
// defaulting to latest.
func getAPITagFromNamedRef(ref reference.Named) string {
	if digested, ok := ref.(reference.Digested); ok {
		return digested.Digest().String()
	}
	ref = reference.TagNameOnly(ref)
	if tagged, ok := ref.(reference.Tagged); ok {
		return tagged.Tag()
	}
	return ""
}
