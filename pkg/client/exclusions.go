package client

import (
	"context"
	"fmt"
)

// ListExclusionsOptions contains optional filters for exclusions and
// restrictions, which share a filter surface.
type ListExclusionsOptions struct {
	Limit  int
	Cursor string

	Type          string
	OSTypes       []string
	SiteIDs       []string
	Query         string
	ValueContains string
}

// ListExclusions retrieves one page of allowlist exclusions.
func (c *Client) ListExclusions(ctx context.Context, opts *ListExclusionsOptions) (*ListResult[Exclusion], error) {
	result, err := c.listExclusionKind(ctx, "/exclusions", opts)
	if err != nil {
		return nil, fmt.Errorf("listing exclusions: %w", err)
	}
	return result, nil
}

// ListRestrictions retrieves one page of blocklist entries.
func (c *Client) ListRestrictions(ctx context.Context, opts *ListExclusionsOptions) (*ListResult[Exclusion], error) {
	result, err := c.listExclusionKind(ctx, "/restrictions", opts)
	if err != nil {
		return nil, fmt.Errorf("listing restrictions: %w", err)
	}
	return result, nil
}

func (c *Client) listExclusionKind(ctx context.Context, endpoint string, opts *ListExclusionsOptions) (*ListResult[Exclusion], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.set("type", opts.Type)
		q.setCSV("osTypes", opts.OSTypes)
		q.setCSV("siteIds", opts.SiteIDs)
		q.set("query", opts.Query)
		q.set("value__contains", opts.ValueContains)
	}

	var resp page[Exclusion]
	if err := c.get(ctx, endpoint, q.Values, &resp); err != nil {
		return nil, err
	}
	return resultFrom(resp), nil
}
