package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListActivitiesInput is the input for s1_list_activities.
type ListActivitiesInput struct {
	ActivityTypes []int    `json:"activity_types,omitempty" jsonschema:"Filter by numeric activity-type codes (see s1_list_activity_types)"`
	SiteIDs       []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	AgentIDs      []string `json:"agent_ids,omitempty" jsonschema:"Filter by agent IDs"`
	ThreatIDs     []string `json:"threat_ids,omitempty" jsonschema:"Filter by threat IDs"`
	CreatedAfter  string   `json:"created_after,omitempty" jsonschema:"Only activities after this time (ISO 8601)"`
	CreatedBefore string   `json:"created_before,omitempty" jsonschema:"Only activities before this time (ISO 8601)"`
	Limit         int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor        string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// ActivitySummary is a compact view of one audit-trail entry.
type ActivitySummary struct {
	ID          string `json:"id"`
	Type        int    `json:"type,omitempty"`
	Description string `json:"description"`
	Detail      string `json:"detail,omitempty"`
	When        string `json:"when,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
	AgentID     string `json:"agent_id,omitempty"`
	ThreatID    string `json:"threat_id,omitempty"`
}

// ListActivitiesOutput is the output for s1_list_activities.
type ListActivitiesOutput struct {
	Activities []ActivitySummary `json:"activities,omitzero"`
	TotalItems int               `json:"total_items,omitempty"`
	NextCursor string            `json:"next_cursor,omitempty"`
	Hint       string            `json:"hint,omitempty"`
}

// ToolListActivities lists audit-trail activities.
func ToolListActivities(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListActivitiesInput) (*sdkmcp.CallToolResult, ListActivitiesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListActivitiesInput) (*sdkmcp.CallToolResult, ListActivitiesOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListActivitiesOutput{}, err
		}

		result, err := d.Client.ListActivities(ctx, &client.ListActivitiesOptions{
			Limit:         limit,
			Cursor:        input.Cursor,
			ActivityTypes: input.ActivityTypes,
			SiteIDs:       input.SiteIDs,
			AgentIDs:      input.AgentIDs,
			ThreatIDs:     input.ThreatIDs,
			CreatedAfter:  input.CreatedAfter,
			CreatedBefore: input.CreatedBefore,
		})
		if err != nil {
			return nil, ListActivitiesOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListActivitiesOutput{Hint: "No activities found matching criteria."}, nil
		}

		output := ListActivitiesOutput{
			Activities: make([]ActivitySummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, a := range result.Items {
			entry := ActivitySummary{
				ID:          a.ID,
				Type:        a.ActivityType,
				Description: orUnknown(a.PrimaryDescription),
				Detail:      a.SecondaryDescription,
				SiteName:    a.SiteName,
				AgentID:     a.AgentID,
				ThreatID:    a.ThreatID,
			}
			if a.CreatedAt != "" {
				entry.When = FormatTimeAgo(a.CreatedAt)
			}
			output.Activities[i] = entry
		}
		return nil, output, nil
	}
}

// ListActivityTypesInput is the input for s1_list_activity_types.
type ListActivityTypesInput struct{}

// ActivityTypeEntry is one numeric activity-type code.
type ActivityTypeEntry struct {
	ID          int    `json:"id"`
	Action      string `json:"action,omitempty"`
	Description string `json:"description,omitempty"`
}

// ListActivityTypesOutput is the output for s1_list_activity_types.
type ListActivityTypesOutput struct {
	Types []ActivityTypeEntry `json:"types,omitzero"`
	Count int                 `json:"count"`
	Hint  string              `json:"hint,omitempty"`
}

// ToolListActivityTypes enumerates the activity-type codes usable as
// filters in s1_list_activities.
func ToolListActivityTypes(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListActivityTypesInput) (*sdkmcp.CallToolResult, ListActivityTypesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListActivityTypesInput) (*sdkmcp.CallToolResult, ListActivityTypesOutput, error) {
		types, err := d.Client.ListActivityTypes(ctx)
		if err != nil {
			return nil, ListActivityTypesOutput{}, WrapS1Error(err)
		}

		if len(types) == 0 {
			return nil, ListActivityTypesOutput{Hint: "The console reported no activity types."}, nil
		}

		output := ListActivityTypesOutput{
			Types: make([]ActivityTypeEntry, len(types)),
			Count: len(types),
		}
		for i, t := range types {
			output.Types[i] = ActivityTypeEntry{
				ID:          t.ID,
				Action:      t.Action,
				Description: t.DescriptionTemplate,
			}
		}
		return nil, output, nil
	}
}
