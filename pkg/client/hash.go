package client

import (
	"context"
	"fmt"
	"net/url"
)

// HashReputation looks up the console's reputation verdict for a SHA1 or
// SHA256 digest. Format validation belongs to the caller; the client sends
// the hash as given.
func (c *Client) HashReputation(ctx context.Context, hash string) (*HashReputation, error) {
	var resp dataEnvelope[HashReputation]
	if err := c.get(ctx, "/hashes/"+url.PathEscape(hash)+"/reputation", nil, &resp); err != nil {
		return nil, fmt.Errorf("getting reputation for hash %q: %w", hash, err)
	}
	return &resp.Data, nil
}
