package client

import (
	"context"
	"fmt"
)

// ListAppRisksOptions contains optional filters for application risks.
type ListAppRisksOptions struct {
	Limit  int
	Cursor string

	SiteIDs            []string
	AccountIDs         []string
	Severities         []string
	CVEIDContains      string
	ApplicationNames   []string
	ExploitedInTheWild *bool
	MitigationStatus   string
	SortBy             string
	SortOrder          string
}

// ListAppRisks retrieves one page of CVE findings.
func (c *Client) ListAppRisks(ctx context.Context, opts *ListAppRisksOptions) (*ListResult[AppRisk], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.setCSV("accountIds", opts.AccountIDs)
		q.setCSV("severities", opts.Severities)
		q.set("cveId__contains", opts.CVEIDContains)
		q.setCSV("applicationNames", opts.ApplicationNames)
		q.setBool("exploitedInTheWild", opts.ExploitedInTheWild)
		q.set("mitigationStatus", opts.MitigationStatus)
		q.set("sortBy", opts.SortBy)
		q.set("sortOrder", opts.SortOrder)
	}

	var resp page[AppRisk]
	if err := c.get(ctx, "/application-management/risks", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing application risks: %w", err)
	}
	return resultFrom(resp), nil
}

// ListAppInventoryOptions contains optional filters for the application
// inventory.
type ListAppInventoryOptions struct {
	Limit  int
	Cursor string

	SiteIDs        []string
	NameContains   string
	VendorContains string
	OSTypes        []string
}

// ListAppInventory retrieves one page of installed applications.
func (c *Client) ListAppInventory(ctx context.Context, opts *ListAppInventoryOptions) (*ListResult[AppInventoryItem], error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.set("name__contains", opts.NameContains)
		q.set("vendor__contains", opts.VendorContains)
		q.setCSV("osTypes", opts.OSTypes)
	}

	var resp page[AppInventoryItem]
	if err := c.get(ctx, "/application-management/inventory", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing application inventory: %w", err)
	}
	return resultFrom(resp), nil
}
