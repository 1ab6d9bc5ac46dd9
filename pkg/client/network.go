package client

import (
	"context"
	"fmt"
)

// ListRangerInventoryOptions contains optional filters for the Ranger
// network-inventory table.
type ListRangerInventoryOptions struct {
	Limit  int
	Cursor string

	SiteIDs            []string
	ManagedStates      []string
	DeviceTypes        []string
	OSTypes            []string
	Query              string
	LocalIPContains    string
	MACAddressContains string
	HostnameContains   string
	FirstSeenAfter     string
	LastSeenAfter      string
}

// ListRangerInventory retrieves one page of discovered network devices.
func (c *Client) ListRangerInventory(ctx context.Context, opts *ListRangerInventoryOptions) (*ListResult[RangerDevice], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.setCSV("managedStates", opts.ManagedStates)
		q.setCSV("deviceTypes", opts.DeviceTypes)
		q.setCSV("osTypes", opts.OSTypes)
		q.set("query", opts.Query)
		q.set("localIp__contains", opts.LocalIPContains)
		q.set("macAddress__contains", opts.MACAddressContains)
		q.set("hostnames__contains", opts.HostnameContains)
		q.set("firstSeen__gt", opts.FirstSeenAfter)
		q.set("lastSeen__gt", opts.LastSeenAfter)
	}

	var resp page[RangerDevice]
	if err := c.get(ctx, "/ranger/table-view", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing ranger inventory: %w", err)
	}
	return resultFrom(resp), nil
}

// ListTagsOptions contains filters for scope tags. Type is required.
type ListTagsOptions struct {
	Type string

	Limit  int
	Cursor string

	SiteIDs      []string
	Query        string
	NameContains string
}

// ListTags retrieves one page of scope tags of the given type.
func (c *Client) ListTags(ctx context.Context, opts *ListTagsOptions) (*ListResult[Tag], error) {
	q := newParams()
	q.set("type", opts.Type)
	q.setLimit(opts.Limit)
	q.set("cursor", opts.Cursor)
	q.setCSV("siteIds", opts.SiteIDs)
	q.set("query", opts.Query)
	q.set("name__contains", opts.NameContains)

	var resp page[Tag]
	if err := c.get(ctx, "/tags", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return resultFrom(resp), nil
}

// ListIOCsOptions contains optional filters for threat-intelligence IOCs.
type ListIOCsOptions struct {
	Limit  int
	Cursor string

	SiteIDs         []string
	Type            string
	Value           string
	Severity        string
	Source          string
	CreatorContains string
	NameContains    string
	CreatedAfter    string
	CreatedBefore   string
}

// ListIOCs retrieves one page of indicators of compromise.
func (c *Client) ListIOCs(ctx context.Context, opts *ListIOCsOptions) (*ListResult[IOC], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.set("type", opts.Type)
		q.set("value", opts.Value)
		q.set("severity", opts.Severity)
		q.set("source", opts.Source)
		q.set("creator__contains", opts.CreatorContains)
		q.set("name__contains", opts.NameContains)
		q.set("creationTime__gt", opts.CreatedAfter)
		q.set("creationTime__lt", opts.CreatedBefore)
	}

	var resp page[IOC]
	if err := c.get(ctx, "/threat-intelligence/iocs", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing IOCs: %w", err)
	}
	return resultFrom(resp), nil
}
