package client

import (
	"context"
	"fmt"
	"net/url"
)

// ListThreatsOptions contains optional filters for listing threats.
type ListThreatsOptions struct {
	Limit  int
	Cursor string

	SiteIDs  []string
	GroupIDs []string
	// Resolved filters on resolution state when non-nil.
	Resolved             *bool
	MitigationStatuses   []string
	Classifications      []string
	AnalystVerdicts      []string
	ComputerNameContains string
	ThreatNameContains   string
}

// ListThreats retrieves one page of threats matching the filters.
func (c *Client) ListThreats(ctx context.Context, opts *ListThreatsOptions) (*ListResult[Threat], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.setCSV("groupIds", opts.GroupIDs)
		q.setBool("resolved", opts.Resolved)
		q.setCSV("mitigationStatuses", opts.MitigationStatuses)
		q.setCSV("classifications", opts.Classifications)
		q.setCSV("analystVerdicts", opts.AnalystVerdicts)
		q.set("computerName__contains", opts.ComputerNameContains)
		q.set("threatDetails__contains", opts.ThreatNameContains)
	}

	var resp page[Threat]
	if err := c.get(ctx, "/threats", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing threats: %w", err)
	}
	return resultFrom(resp), nil
}

// GetThreat retrieves a single threat by ID. Returns (nil, nil) when no
// threat matches: absence of data is not a transport failure.
func (c *Client) GetThreat(ctx context.Context, threatID string) (*Threat, error) {
	q := newParams()
	q.set("ids", threatID)

	var resp page[Threat]
	if err := c.get(ctx, "/threats", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("getting threat %q: %w", threatID, err)
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

// MitigateThreat applies a mitigation action to exactly one threat and
// returns the affected count. Zero affected means the ID matched nothing
// server-side.
func (c *Client) MitigateThreat(ctx context.Context, threatID string, action MitigationAction) (int, error) {
	body := map[string]any{
		"filter": map[string]any{"ids": []string{threatID}},
	}

	var resp affectedResponse
	if err := c.post(ctx, "/threats/mitigate/"+url.PathEscape(string(action)), body, &resp); err != nil {
		return 0, fmt.Errorf("mitigating threat %q with %s: %w", threatID, action, err)
	}
	return resp.Data.Affected, nil
}
