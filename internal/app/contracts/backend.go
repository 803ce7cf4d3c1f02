package contracts

import "context"

// RestClient is the single seam to the remote hospital backend. Paths are
// already normalized by the resource catalog; implementations only join them
// onto the configured base URL.
type RestClient interface {
	DoRequest(ctx context.Context, method, path string, body []byte) ([]byte, error)
}
