package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/internal/dv"
	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// RunDVQueryInput is the input for s1_run_dv_query.
type RunDVQueryInput struct {
	Query      string   `json:"query" jsonschema:"Deep Visibility query string, e.g. ProcessName contains \"powershell\""`
	FromDate   string   `json:"from_date" jsonschema:"Start of the search window (ISO 8601)"`
	ToDate     string   `json:"to_date" jsonschema:"End of the search window (ISO 8601)"`
	SiteIDs    []string `json:"site_ids,omitempty" jsonschema:"Scope to site IDs"`
	GroupIDs   []string `json:"group_ids,omitempty" jsonschema:"Scope to group IDs"`
	AccountIDs []string `json:"account_ids,omitempty" jsonschema:"Scope to account IDs"`
}

// RunDVQueryOutput is the output for s1_run_dv_query.
type RunDVQueryOutput struct {
	QueryID      string `json:"query_id"`
	Status       string `json:"status"`
	StillRunning bool   `json:"still_running,omitempty"`
	Hint         string `json:"hint,omitempty"`
}

// ToolRunDVQuery submits a Deep Visibility query and waits for it within
// the bounded poll window.
func ToolRunDVQuery(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input RunDVQueryInput) (*sdkmcp.CallToolResult, RunDVQueryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input RunDVQueryInput) (*sdkmcp.CallToolResult, RunDVQueryOutput, error) {
		if input.Query == "" {
			return nil, RunDVQueryOutput{}, ErrInvalidInput("query is required")
		}
		if input.FromDate == "" || input.ToDate == "" {
			return nil, RunDVQueryOutput{}, ErrInvalidInput("from_date and to_date are required")
		}

		outcome, err := d.DV.SubmitAndAwait(ctx, dv.QueryRequest{
			Query:      input.Query,
			FromDate:   input.FromDate,
			ToDate:     input.ToDate,
			SiteIDs:    input.SiteIDs,
			GroupIDs:   input.GroupIDs,
			AccountIDs: input.AccountIDs,
		})
		if err != nil {
			return nil, RunDVQueryOutput{}, WrapS1Error(err)
		}

		output := RunDVQueryOutput{
			QueryID:      outcome.QueryID,
			Status:       string(outcome.Status),
			StillRunning: outcome.StillRunning,
		}
		if outcome.StillRunning {
			output.Hint = fmt.Sprintf("Query %s is still running. Retrieve results later with s1_get_dv_events.", outcome.QueryID)
		} else {
			output.Hint = fmt.Sprintf("Query finished. Retrieve results with s1_get_dv_events using query_id %s.", outcome.QueryID)
		}
		return nil, output, nil
	}
}

// GetDVEventsInput is the input for s1_get_dv_events.
type GetDVEventsInput struct {
	QueryID string `json:"query_id" jsonschema:"Query ID returned by s1_run_dv_query"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max events per page (default 50, max 100)"`
	Cursor  string `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// DVEventSummary is a compact view of one Deep Visibility event.
type DVEventSummary struct {
	ID          string `json:"id"`
	EventType   string `json:"event_type,omitempty"`
	EventTime   string `json:"event_time,omitempty"`
	AgentName   string `json:"agent_name,omitempty"`
	ProcessName string `json:"process_name,omitempty"`
	CommandLine string `json:"command_line,omitempty"`
	User        string `json:"user,omitempty"`
	Parent      string `json:"parent,omitempty"`
	SrcIP       string `json:"src_ip,omitempty"`
	DstIP       string `json:"dst_ip,omitempty"`
	DstPort     int    `json:"dst_port,omitempty"`
	FilePath    string `json:"file_path,omitempty"`
	SHA256      string `json:"sha256,omitempty"`
	DNSRequest  string `json:"dns_request,omitempty"`
	URL         string `json:"url,omitempty"`
}

// GetDVEventsOutput is the output for s1_get_dv_events.
type GetDVEventsOutput struct {
	QueryID    string           `json:"query_id"`
	Ready      bool             `json:"ready"`
	Progress   int              `json:"progress"`
	Events     []DVEventSummary `json:"events,omitzero"`
	TotalItems int              `json:"total_items,omitempty"`
	NextCursor string           `json:"next_cursor,omitempty"`
	Hint       string           `json:"hint,omitempty"`
}

// ToolGetDVEvents pages results from a previously submitted query.
func ToolGetDVEvents(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetDVEventsInput) (*sdkmcp.CallToolResult, GetDVEventsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetDVEventsInput) (*sdkmcp.CallToolResult, GetDVEventsOutput, error) {
		if input.QueryID == "" {
			return nil, GetDVEventsOutput{}, ErrInvalidInput("query_id is required")
		}
		if input.Limit > dv.MaxEventLimit {
			return nil, GetDVEventsOutput{}, ErrInvalidInput(limitExceededMessage(input.Limit, dv.MaxEventLimit))
		}

		outcome, err := d.DV.FetchEvents(ctx, input.QueryID, input.Limit, input.Cursor)
		if err != nil {
			return nil, GetDVEventsOutput{}, WrapS1Error(err)
		}

		output := GetDVEventsOutput{
			QueryID:  outcome.QueryID,
			Ready:    outcome.Ready,
			Progress: outcome.Progress,
		}
		if !outcome.Ready {
			output.Hint = fmt.Sprintf("Query is still running (%d%% complete). Try again shortly.", outcome.Progress)
			return nil, output, nil
		}

		if len(outcome.Events) == 0 {
			output.Hint = "Query finished with no matching events."
			return nil, output, nil
		}

		output.Events = make([]DVEventSummary, len(outcome.Events))
		for i, ev := range outcome.Events {
			output.Events[i] = summarizeDVEvent(ev)
		}
		output.TotalItems = outcome.TotalItems
		output.NextCursor = outcome.NextCursor
		output.Hint = cursorHint(outcome.NextCursor)
		return nil, output, nil
	}
}

func summarizeDVEvent(ev client.DVEvent) DVEventSummary {
	s := DVEventSummary{
		ID:          ev.ID,
		EventType:   ev.EventType,
		EventTime:   ev.EventTime,
		AgentName:   ev.AgentName,
		ProcessName: ev.ProcessName,
		CommandLine: ev.ProcessCommandLine,
		User:        ev.ProcessUser,
		Parent:      ev.ParentProcessName,
		SrcIP:       ev.SrcIP,
		DstIP:       ev.DstIP,
		DstPort:     ev.DstPort,
		SHA256:      ev.SHA256,
		DNSRequest:  ev.DNSRequest,
		URL:         ev.URL,
	}
	if ev.FilePath != "" {
		s.FilePath = TruncatePath(ev.FilePath, 120)
	}
	return s
}
