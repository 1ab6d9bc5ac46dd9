package client

import (
	"context"
	"fmt"
	"net/url"
)

// ListSitesOptions contains optional filters for listing sites.
type ListSitesOptions struct {
	Limit  int
	Cursor string

	SiteIDs      []string
	AccountIDs   []string
	NameContains []string
	Query        string
	State        string
	States       []string
	SiteType     string
	SKU          string
	SortBy       string
	SortOrder    string
}

// SitesResult is one page of sites plus the fleet-wide license rollup.
type SitesResult struct {
	Sites          []Site
	ActiveLicenses int
	TotalLicenses  int
	NextCursor     string
	TotalItems     int
}

// ListSites retrieves one page of sites matching the filters.
func (c *Client) ListSites(ctx context.Context, opts *ListSitesOptions) (*SitesResult, error) {
	q := newParams()
	if opts != nil {
		q.setLimit(opts.Limit)
		q.set("cursor", opts.Cursor)
		q.setCSV("siteIds", opts.SiteIDs)
		q.setCSV("accountIds", opts.AccountIDs)
		q.setCSV("name__contains", opts.NameContains)
		q.set("query", opts.Query)
		q.set("state", opts.State)
		q.setCSV("states", opts.States)
		q.set("siteType", opts.SiteType)
		q.set("sku", opts.SKU)
		q.set("sortBy", opts.SortBy)
		q.set("sortOrder", opts.SortOrder)
	}

	var resp struct {
		Data       SiteList    `json:"data"`
		Pagination *Pagination `json:"pagination,omitempty"`
	}
	if err := c.get(ctx, "/sites", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}

	result := &SitesResult{
		Sites:          resp.Data.Sites,
		ActiveLicenses: resp.Data.AllSites.ActiveLicenses,
		TotalLicenses:  resp.Data.AllSites.TotalLicenses,
	}
	if resp.Pagination != nil {
		result.NextCursor = resp.Pagination.NextCursor
		result.TotalItems = resp.Pagination.TotalItems
	}
	return result, nil
}

// GetSite retrieves a single site by ID.
func (c *Client) GetSite(ctx context.Context, siteID string) (*Site, error) {
	var resp dataEnvelope[Site]
	if err := c.get(ctx, "/sites/"+url.PathEscape(siteID), nil, &resp); err != nil {
		return nil, fmt.Errorf("getting site %q: %w", siteID, err)
	}
	return &resp.Data, nil
}
