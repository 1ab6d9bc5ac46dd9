package client

import (
	"context"
	"fmt"
)

// ListAgentsOptions contains optional filters for listing agents.
type ListAgentsOptions struct {
	Limit  int
	Cursor string

	SiteIDs              []string
	GroupIDs             []string
	ComputerNameContains string
	OSTypes              []string
	IsActive             *bool
	IsInfected           *bool
	NetworkStatuses      []string
}

// ListAgents retrieves one page of agents matching the filters.
func (c *Client) ListAgents(ctx context.Context, opts *ListAgentsOptions) (*ListResult[Agent], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.setCSV("groupIds", opts.GroupIDs)
		q.set("computerName__contains", opts.ComputerNameContains)
		q.setCSV("osTypes", opts.OSTypes)
		q.setBool("isActive", opts.IsActive)
		q.setBool("infected", opts.IsInfected)
		q.setCSV("networkStatuses", opts.NetworkStatuses)
	}

	var resp page[Agent]
	if err := c.get(ctx, "/agents", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}
	return resultFrom(resp), nil
}

// GetAgent retrieves a single agent by ID. Returns (nil, nil) when no agent
// matches.
func (c *Client) GetAgent(ctx context.Context, agentID string) (*Agent, error) {
	q := newParams()
	q.set("ids", agentID)

	var resp page[Agent]
	if err := c.get(ctx, "/agents", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("getting agent %q: %w", agentID, err)
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

// IsolateAgent disconnects an agent from the network while keeping its
// management channel. Returns the affected count.
func (c *Client) IsolateAgent(ctx context.Context, agentID string) (int, error) {
	affected, err := c.agentAction(ctx, "/agents/actions/disconnect", agentID)
	if err != nil {
		return 0, fmt.Errorf("isolating agent %q: %w", agentID, err)
	}
	return affected, nil
}

// ReconnectAgent lifts network isolation from an agent. Returns the
// affected count.
func (c *Client) ReconnectAgent(ctx context.Context, agentID string) (int, error) {
	affected, err := c.agentAction(ctx, "/agents/actions/connect", agentID)
	if err != nil {
		return 0, fmt.Errorf("reconnecting agent %q: %w", agentID, err)
	}
	return affected, nil
}

func (c *Client) agentAction(ctx context.Context, endpoint, agentID string) (int, error) {
	body := map[string]any{
		"filter": map[string]any{"ids": []string{agentID}},
	}

	var resp affectedResponse
	if err := c.post(ctx, endpoint, body, &resp); err != nil {
		return 0, err
	}
	return resp.Data.Affected, nil
}
