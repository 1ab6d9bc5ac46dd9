package client

import (
	"context"
	"fmt"
)

// ListDeviceControlEventsOptions contains optional filters for
// device-control events.
type ListDeviceControlEventsOptions struct {
	Limit  int
	Cursor string

	SiteIDs []string
	// Interfaces maps to the console's serviceClasses parameter
	// (USB, Bluetooth, ...).
	Interfaces  []string
	EventTypes  []string
	AgentIDs    []string
	EventAfter  string
	EventBefore string
	Query       string
}

// ListDeviceControlEvents retrieves one page of device-control events.
func (c *Client) ListDeviceControlEvents(ctx context.Context, opts *ListDeviceControlEventsOptions) (*ListResult[DeviceControlEvent], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.setCSV("serviceClasses", opts.Interfaces)
		q.setCSV("eventTypes", opts.EventTypes)
		q.setCSV("agentIds", opts.AgentIDs)
		q.set("eventTime__gt", opts.EventAfter)
		q.set("eventTime__lt", opts.EventBefore)
		q.set("query", opts.Query)
	}

	var resp page[DeviceControlEvent]
	if err := c.get(ctx, "/device-control/events", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing device control events: %w", err)
	}
	return resultFrom(resp), nil
}
