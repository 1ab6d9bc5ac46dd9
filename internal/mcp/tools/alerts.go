package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListAlertsInput is the input for s1_list_alerts.
type ListAlertsInput struct {
	Severity       string   `json:"severity,omitempty" jsonschema:"Filter: LOW, MEDIUM, HIGH, CRITICAL"`
	AnalystVerdict string   `json:"analyst_verdict,omitempty" jsonschema:"Filter: TRUE_POSITIVE, FALSE_POSITIVE, UNDEFINED"`
	IncidentStatus string   `json:"incident_status,omitempty" jsonschema:"Filter: NEW, IN_PROGRESS, RESOLVED"`
	StorylineID    string   `json:"storyline_id,omitempty" jsonschema:"Filter by storyline ID (correlates with threats and events)"`
	SiteIDs        []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Limit          int      `json:"limit,omitempty" jsonschema:"Max results (default 20, max 50)"`
	Cursor         string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// AlertSummary is a compact view of one unified alert.
type AlertSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Severity       string `json:"severity,omitempty"`
	Status         string `json:"status,omitempty"`
	AnalystVerdict string `json:"analyst_verdict,omitempty"`
	Classification string `json:"classification,omitempty"`
	StorylineID    string `json:"storyline_id,omitempty"`
	Detected       string `json:"detected,omitempty"`
}

// ListAlertsOutput is the output for s1_list_alerts.
type ListAlertsOutput struct {
	Alerts     []AlertSummary `json:"alerts,omitzero"`
	NextCursor string         `json:"next_cursor,omitempty"`
	Hint       string         `json:"hint,omitempty"`
}

// ToolListAlerts queries unified alerts through the GraphQL surface.
func ToolListAlerts(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAlertsInput) (*sdkmcp.CallToolResult, ListAlertsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAlertsInput) (*sdkmcp.CallToolResult, ListAlertsOutput, error) {
		limit, err := resolveLimit(input.Limit, client.DefaultAlertLimit, maxAlertListLimit)
		if err != nil {
			return nil, ListAlertsOutput{}, err
		}

		page, err := d.Client.QueryAlerts(ctx, &client.AlertQuery{
			Limit:          limit,
			Cursor:         input.Cursor,
			Severity:       input.Severity,
			AnalystVerdict: input.AnalystVerdict,
			IncidentStatus: input.IncidentStatus,
			StorylineID:    input.StorylineID,
			SiteIDs:        input.SiteIDs,
		})
		if err != nil {
			return nil, ListAlertsOutput{}, WrapS1Error(err)
		}

		if len(page.Alerts) == 0 {
			return nil, ListAlertsOutput{Hint: "No alerts found matching criteria."}, nil
		}

		output := ListAlertsOutput{Alerts: make([]AlertSummary, len(page.Alerts))}
		for i, a := range page.Alerts {
			output.Alerts[i] = AlertSummary{
				ID:             a.ID,
				Name:           orUnknown(a.Name),
				Severity:       a.Severity,
				Status:         a.Status,
				AnalystVerdict: a.AnalystVerdict,
				Classification: a.Classification,
				StorylineID:    a.StorylineID,
				Detected:       a.DetectedAt,
			}
			if a.DetectedAt != "" {
				output.Alerts[i].Detected = FormatTimeAgo(a.DetectedAt)
			}
		}
		if page.PageInfo.HasNextPage {
			output.NextCursor = page.PageInfo.EndCursor
			output.Hint = cursorHint(page.PageInfo.EndCursor)
		}
		return nil, output, nil
	}
}
