package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListExclusionsInput is the input for s1_list_exclusions and
// s1_list_restrictions, which share a filter surface.
type ListExclusionsInput struct {
	Type    string   `json:"type,omitempty" jsonschema:"Filter: path, white_hash, certificate, browser, file_type"`
	OSTypes []string `json:"os_types,omitempty" jsonschema:"Filter: windows, macos, linux"`
	SiteIDs []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Value   string   `json:"value,omitempty" jsonschema:"Search by entry value (partial match)"`
	Limit   int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor  string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// ExclusionSummary is a compact view of one allowlist or blocklist entry.
type ExclusionSummary struct {
	ID          string `json:"id"`
	Type        string `json:"type,omitempty"`
	Value       string `json:"value"`
	OSType      string `json:"os_type,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Description string `json:"description,omitempty"`
	Created     string `json:"created,omitempty"`
}

// ListExclusionsOutput is the output for exclusion and restriction listings.
type ListExclusionsOutput struct {
	Entries    []ExclusionSummary `json:"entries,omitzero"`
	TotalItems int                `json:"total_items,omitempty"`
	NextCursor string             `json:"next_cursor,omitempty"`
	Hint       string             `json:"hint,omitempty"`
}

// ToolListExclusions lists allowlist exclusions.
func ToolListExclusions(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListExclusionsInput) (*sdkmcp.CallToolResult, ListExclusionsOutput, error) {
	return exclusionLister(d, "exclusions", func(ctx context.Context, opts *client.ListExclusionsOptions) (*client.ListResult[client.Exclusion], error) {
		return d.Client.ListExclusions(ctx, opts)
	})
}

// ToolListRestrictions lists blocklist restrictions.
func ToolListRestrictions(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListExclusionsInput) (*sdkmcp.CallToolResult, ListExclusionsOutput, error) {
	return exclusionLister(d, "restrictions", func(ctx context.Context, opts *client.ListExclusionsOptions) (*client.ListResult[client.Exclusion], error) {
		return d.Client.ListRestrictions(ctx, opts)
	})
}

func exclusionLister(d *Deps, kind string, list func(ctx context.Context, opts *client.ListExclusionsOptions) (*client.ListResult[client.Exclusion], error)) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListExclusionsInput) (*sdkmcp.CallToolResult, ListExclusionsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListExclusionsInput) (*sdkmcp.CallToolResult, ListExclusionsOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListExclusionsOutput{}, err
		}

		result, err := list(ctx, &client.ListExclusionsOptions{
			Limit:         limit,
			Cursor:        input.Cursor,
			Type:          input.Type,
			OSTypes:       input.OSTypes,
			SiteIDs:       input.SiteIDs,
			ValueContains: input.Value,
		})
		if err != nil {
			return nil, ListExclusionsOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListExclusionsOutput{Hint: "No " + kind + " found matching criteria."}, nil
		}

		output := ListExclusionsOutput{
			Entries:    make([]ExclusionSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, e := range result.Items {
			entry := ExclusionSummary{
				ID:          e.ID,
				Type:        e.Type,
				Value:       orUnknown(e.Value),
				OSType:      e.OSType,
				Mode:        e.Mode,
				Scope:       e.ScopeName,
				Description: e.Description,
			}
			if e.CreatedAt != "" {
				entry.Created = FormatTimeAgo(e.CreatedAt)
			}
			output.Entries[i] = entry
		}
		return nil, output, nil
	}
}
