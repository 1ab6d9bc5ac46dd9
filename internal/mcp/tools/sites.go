package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListSitesInput is the input for s1_list_sites.
type ListSitesInput struct {
	Name     string   `json:"name,omitempty" jsonschema:"Search by site name (partial match)"`
	States   []string `json:"states,omitempty" jsonschema:"Filter: active, expired, deleted"`
	SiteType string   `json:"site_type,omitempty" jsonschema:"Filter by site type (Trial, Paid)"`
	Limit    int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor   string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// SiteSummary is a compact view of one site.
type SiteSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	State          string `json:"state,omitempty"`
	SiteType       string `json:"site_type,omitempty"`
	AccountName    string `json:"account_name,omitempty"`
	ActiveLicenses int    `json:"active_licenses"`
	TotalLicenses  int    `json:"total_licenses"`
	Expiration     string `json:"expiration,omitempty"`
}

// ListSitesOutput is the output for s1_list_sites.
type ListSitesOutput struct {
	Sites               []SiteSummary `json:"sites,omitzero"`
	FleetActiveLicenses int           `json:"fleet_active_licenses,omitempty"`
	FleetTotalLicenses  int           `json:"fleet_total_licenses,omitempty"`
	TotalItems          int           `json:"total_items,omitempty"`
	NextCursor          string        `json:"next_cursor,omitempty"`
	Hint                string        `json:"hint,omitempty"`
}

// ToolListSites lists sites with the fleet-wide license rollup.
func ToolListSites(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSitesInput) (*sdkmcp.CallToolResult, ListSitesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSitesInput) (*sdkmcp.CallToolResult, ListSitesOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListSitesOutput{}, err
		}

		var nameFilter []string
		if input.Name != "" {
			nameFilter = []string{input.Name}
		}

		result, err := d.Client.ListSites(ctx, &client.ListSitesOptions{
			Limit:        limit,
			Cursor:       input.Cursor,
			NameContains: nameFilter,
			States:       input.States,
			SiteType:     input.SiteType,
		})
		if err != nil {
			return nil, ListSitesOutput{}, WrapS1Error(err)
		}

		if len(result.Sites) == 0 {
			return nil, ListSitesOutput{Hint: "No sites found matching criteria."}, nil
		}

		output := ListSitesOutput{
			Sites:               make([]SiteSummary, len(result.Sites)),
			FleetActiveLicenses: result.ActiveLicenses,
			FleetTotalLicenses:  result.TotalLicenses,
			TotalItems:          result.TotalItems,
			NextCursor:          result.NextCursor,
			Hint:                cursorHint(result.NextCursor),
		}
		for i, s := range result.Sites {
			output.Sites[i] = SiteSummary{
				ID:             s.ID,
				Name:           orUnknown(s.Name),
				State:          s.State,
				SiteType:       s.SiteType,
				AccountName:    s.AccountName,
				ActiveLicenses: s.ActiveLicenses,
				TotalLicenses:  s.TotalLicenses,
				Expiration:     s.Expiration,
			}
		}
		return nil, output, nil
	}
}

// GetSiteInput is the input for s1_get_site.
type GetSiteInput struct {
	SiteID string `json:"site_id" jsonschema:"The site ID to retrieve"`
}

// GetSiteOutput is the output for s1_get_site.
type GetSiteOutput struct {
	Site SiteSummary `json:"site"`
	SKU  string      `json:"sku,omitempty"`
}

// ToolGetSite retrieves a single site by ID.
func ToolGetSite(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetSiteInput) (*sdkmcp.CallToolResult, GetSiteOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetSiteInput) (*sdkmcp.CallToolResult, GetSiteOutput, error) {
		if input.SiteID == "" {
			return nil, GetSiteOutput{}, ErrInvalidInput("site_id is required")
		}

		s, err := d.Client.GetSite(ctx, input.SiteID)
		if err != nil {
			return nil, GetSiteOutput{}, WrapS1Error(err)
		}
		if s == nil || s.ID == "" {
			return nil, GetSiteOutput{}, ErrNotFound("site", input.SiteID)
		}

		return nil, GetSiteOutput{
			Site: SiteSummary{
				ID:             s.ID,
				Name:           orUnknown(s.Name),
				State:          s.State,
				SiteType:       s.SiteType,
				AccountName:    s.AccountName,
				ActiveLicenses: s.ActiveLicenses,
				TotalLicenses:  s.TotalLicenses,
				Expiration:     s.Expiration,
			},
			SKU: s.SKU,
		}, nil
	}
}
