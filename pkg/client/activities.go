package client

import (
	"context"
	"fmt"
)

// ListActivitiesOptions contains optional filters for the audit trail.
type ListActivitiesOptions struct {
	Limit  int
	Cursor string

	ActivityTypes []int
	SiteIDs       []string
	AccountIDs    []string
	AgentIDs      []string
	ThreatIDs     []string
	CreatedAfter  string
	CreatedBefore string
	SortBy        string
	SortOrder     string
}

// ListActivities retrieves one page of audit-trail activities.
func (c *Client) ListActivities(ctx context.Context, opts *ListActivitiesOptions) (*ListResult[Activity], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setIntCSV("activityTypes", opts.ActivityTypes)
		q.setCSV("siteIds", opts.SiteIDs)
		q.setCSV("accountIds", opts.AccountIDs)
		q.setCSV("agentIds", opts.AgentIDs)
		q.setCSV("threatIds", opts.ThreatIDs)
		q.set("createdAt__gt", opts.CreatedAfter)
		q.set("createdAt__lt", opts.CreatedBefore)
		q.set("sortBy", opts.SortBy)
		q.set("sortOrder", opts.SortOrder)
	}

	var resp page[Activity]
	if err := c.get(ctx, "/activities", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return resultFrom(resp), nil
}

// ListActivityTypes returns the catalog of numeric activity-type codes.
func (c *Client) ListActivityTypes(ctx context.Context) ([]ActivityType, error) {
	var resp dataEnvelope[[]ActivityType]
	if err := c.get(ctx, "/activities/types", nil, &resp); err != nil {
		return nil, fmt.Errorf("listing activity types: %w", err)
	}
	return resp.Data, nil
}
