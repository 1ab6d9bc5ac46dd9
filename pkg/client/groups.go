package client

import (
	"context"
	"fmt"
	"net/url"
)

// ListGroupsOptions contains optional filters for listing groups.
type ListGroupsOptions struct {
	Limit  int
	Cursor string

	SiteIDs []string
	Type    string
	Query   string
	Name    string
}

// ListGroups retrieves one page of groups matching the filters.
func (c *Client) ListGroups(ctx context.Context, opts *ListGroupsOptions) (*ListResult[Group], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.set("type", opts.Type)
		q.set("query", opts.Query)
		q.set("name", opts.Name)
	}

	var resp page[Group]
	if err := c.get(ctx, "/groups", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	return resultFrom(resp), nil
}

// GetGroup retrieves a single group by ID.
func (c *Client) GetGroup(ctx context.Context, groupID string) (*Group, error) {
	var resp dataEnvelope[Group]
	if err := c.get(ctx, "/groups/"+url.PathEscape(groupID), nil, &resp); err != nil {
		return nil, fmt.Errorf("getting group %q: %w", groupID, err)
	}
	return &resp.Data, nil
}
