package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListDeviceControlEventsInput is the input for s1_list_device_control_events.
type ListDeviceControlEventsInput struct {
	Interfaces  []string `json:"interfaces,omitempty" jsonschema:"Filter: USB, Bluetooth"`
	EventTypes  []string `json:"event_types,omitempty" jsonschema:"Filter: connected, disconnected, blocked"`
	AgentIDs    []string `json:"agent_ids,omitempty" jsonschema:"Filter by agent IDs"`
	SiteIDs     []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	EventAfter  string   `json:"event_after,omitempty" jsonschema:"Only events after this time (ISO 8601)"`
	EventBefore string   `json:"event_before,omitempty" jsonschema:"Only events before this time (ISO 8601)"`
	Limit       int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor      string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// DeviceControlEventSummary is a compact view of one device-control event.
type DeviceControlEventSummary struct {
	ID         string `json:"id"`
	EventType  string `json:"event_type,omitempty"`
	When       string `json:"when,omitempty"`
	Interface  string `json:"interface,omitempty"`
	Permission string `json:"permission,omitempty"`
	DeviceName string `json:"device_name,omitempty"`
	VendorID   string `json:"vendor_id,omitempty"`
	ProductID  string `json:"product_id,omitempty"`
	RuleName   string `json:"rule_name,omitempty"`
	Computer   string `json:"computer,omitempty"`
}

// ListDeviceControlEventsOutput is the output for s1_list_device_control_events.
type ListDeviceControlEventsOutput struct {
	Events     []DeviceControlEventSummary `json:"events,omitzero"`
	TotalItems int                         `json:"total_items,omitempty"`
	NextCursor string                      `json:"next_cursor,omitempty"`
	Hint       string                      `json:"hint,omitempty"`
}

// ToolListDeviceControlEvents lists USB and Bluetooth device-control events.
func ToolListDeviceControlEvents(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListDeviceControlEventsInput) (*sdkmcp.CallToolResult, ListDeviceControlEventsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListDeviceControlEventsInput) (*sdkmcp.CallToolResult, ListDeviceControlEventsOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListDeviceControlEventsOutput{}, err
		}

		result, err := d.Client.ListDeviceControlEvents(ctx, &client.ListDeviceControlEventsOptions{
			Limit:       limit,
			Cursor:      input.Cursor,
			SiteIDs:     input.SiteIDs,
			Interfaces:  input.Interfaces,
			EventTypes:  input.EventTypes,
			AgentIDs:    input.AgentIDs,
			EventAfter:  input.EventAfter,
			EventBefore: input.EventBefore,
		})
		if err != nil {
			return nil, ListDeviceControlEventsOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListDeviceControlEventsOutput{Hint: "No device-control events found matching criteria."}, nil
		}

		output := ListDeviceControlEventsOutput{
			Events:     make([]DeviceControlEventSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, ev := range result.Items {
			entry := DeviceControlEventSummary{
				ID:         ev.ID,
				EventType:  ev.EventType,
				Interface:  ev.Interface,
				Permission: ev.AccessPermission,
				DeviceName: ev.DeviceName,
				VendorID:   ev.VendorID,
				ProductID:  ev.ProductID,
				RuleName:   ev.RuleName,
				Computer:   ev.ComputerName,
			}
			if ev.EventTime != "" {
				entry.When = FormatTimeAgo(ev.EventTime)
			}
			output.Events[i] = entry
		}
		return nil, output, nil
	}
}
