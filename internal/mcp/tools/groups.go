package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListGroupsInput is the input for s1_list_groups.
type ListGroupsInput struct {
	Name    string   `json:"name,omitempty" jsonschema:"Filter by exact group name"`
	Type    string   `json:"type,omitempty" jsonschema:"Filter: static, dynamic, pinned"`
	SiteIDs []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Limit   int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor  string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// GroupSummary is a compact view of one group.
type GroupSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SiteName    string `json:"site_name,omitempty"`
	Type        string `json:"type,omitempty"`
	TotalAgents int    `json:"total_agents"`
	IsDefault   bool   `json:"is_default,omitempty"`
	Created     string `json:"created,omitempty"`
}

// ListGroupsOutput is the output for s1_list_groups.
type ListGroupsOutput struct {
	Groups     []GroupSummary `json:"groups,omitzero"`
	TotalItems int            `json:"total_items,omitempty"`
	NextCursor string         `json:"next_cursor,omitempty"`
	Hint       string         `json:"hint,omitempty"`
}

// ToolListGroups lists agent groups.
func ToolListGroups(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListGroupsInput) (*sdkmcp.CallToolResult, ListGroupsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListGroupsInput) (*sdkmcp.CallToolResult, ListGroupsOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListGroupsOutput{}, err
		}

		result, err := d.Client.ListGroups(ctx, &client.ListGroupsOptions{
			Limit:   limit,
			Cursor:  input.Cursor,
			SiteIDs: input.SiteIDs,
			Type:    input.Type,
			Name:    input.Name,
		})
		if err != nil {
			return nil, ListGroupsOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListGroupsOutput{Hint: "No groups found matching criteria."}, nil
		}

		output := ListGroupsOutput{
			Groups:     make([]GroupSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, g := range result.Items {
			output.Groups[i] = summarizeGroup(g)
		}
		return nil, output, nil
	}
}

func summarizeGroup(g client.Group) GroupSummary {
	s := GroupSummary{
		ID:          g.ID,
		Name:        orUnknown(g.Name),
		SiteName:    g.SiteName,
		Type:        g.Type,
		TotalAgents: g.TotalAgents,
		IsDefault:   g.IsDefault,
	}
	if g.CreatedAt != "" {
		s.Created = FormatTimeAgo(g.CreatedAt)
	}
	return s
}

// GetGroupInput is the input for s1_get_group.
type GetGroupInput struct {
	GroupID string `json:"group_id" jsonschema:"The group ID to retrieve"`
}

// GetGroupOutput is the output for s1_get_group.
type GetGroupOutput struct {
	Group   GroupSummary `json:"group"`
	SiteID  string       `json:"site_id,omitempty"`
	Creator string       `json:"creator,omitempty"`
}

// ToolGetGroup retrieves a single group by ID.
func ToolGetGroup(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetGroupInput) (*sdkmcp.CallToolResult, GetGroupOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetGroupInput) (*sdkmcp.CallToolResult, GetGroupOutput, error) {
		if input.GroupID == "" {
			return nil, GetGroupOutput{}, ErrInvalidInput("group_id is required")
		}

		g, err := d.Client.GetGroup(ctx, input.GroupID)
		if err != nil {
			return nil, GetGroupOutput{}, WrapS1Error(err)
		}
		if g == nil || g.ID == "" {
			return nil, GetGroupOutput{}, ErrNotFound("group", input.GroupID)
		}

		return nil, GetGroupOutput{
			Group:   summarizeGroup(*g),
			SiteID:  g.SiteID,
			Creator: g.Creator,
		}, nil
	}
}
