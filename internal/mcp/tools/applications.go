package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListAppRisksInput is the input for s1_list_app_risks.
type ListAppRisksInput struct {
	Severities         []string `json:"severities,omitempty" jsonschema:"Filter: LOW, MEDIUM, HIGH, CRITICAL"`
	CVEID              string   `json:"cve_id,omitempty" jsonschema:"Search by CVE ID (partial match)"`
	ApplicationNames   []string `json:"application_names,omitempty" jsonschema:"Filter by exact application names"`
	ExploitedInTheWild *bool    `json:"exploited_in_the_wild,omitempty" jsonschema:"Only CVEs with known in-the-wild exploitation"`
	SiteIDs            []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Limit              int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor             string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// AppRiskSummary is a compact view of one CVE finding.
type AppRiskSummary struct {
	ID                string  `json:"id"`
	CVEID             string  `json:"cve_id,omitempty"`
	Severity          string  `json:"severity,omitempty"`
	RiskScore         float64 `json:"risk_score,omitempty"`
	Application       string  `json:"application,omitempty"`
	Vendor            string  `json:"vendor,omitempty"`
	Exploited         bool    `json:"exploited_in_the_wild,omitempty"`
	AffectedEndpoints int     `json:"affected_endpoints,omitempty"`
	Published         string  `json:"published,omitempty"`
}

// ListAppRisksOutput is the output for s1_list_app_risks.
type ListAppRisksOutput struct {
	Risks      []AppRiskSummary `json:"risks,omitzero"`
	TotalItems int              `json:"total_items,omitempty"`
	NextCursor string           `json:"next_cursor,omitempty"`
	Hint       string           `json:"hint,omitempty"`
}

// ToolListAppRisks lists CVE findings from application management.
func ToolListAppRisks(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAppRisksInput) (*sdkmcp.CallToolResult, ListAppRisksOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAppRisksInput) (*sdkmcp.CallToolResult, ListAppRisksOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListAppRisksOutput{}, err
		}

		result, err := d.Client.ListAppRisks(ctx, &client.ListAppRisksOptions{
			Limit:              limit,
			Cursor:             input.Cursor,
			SiteIDs:            input.SiteIDs,
			Severities:         input.Severities,
			CVEIDContains:      input.CVEID,
			ApplicationNames:   input.ApplicationNames,
			ExploitedInTheWild: input.ExploitedInTheWild,
		})
		if err != nil {
			return nil, ListAppRisksOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListAppRisksOutput{Hint: "No application risks found matching criteria."}, nil
		}

		output := ListAppRisksOutput{
			Risks:      make([]AppRiskSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, r := range result.Items {
			output.Risks[i] = AppRiskSummary{
				ID:                r.ID,
				CVEID:             r.CVEID,
				Severity:          r.Severity,
				RiskScore:         r.RiskScore,
				Application:       r.ApplicationName,
				Vendor:            r.ApplicationVendor,
				Exploited:         r.ExploitedInTheWild,
				AffectedEndpoints: r.AffectedEndpointsCount,
				Published:         r.PublishedDate,
			}
		}
		return nil, output, nil
	}
}

// ListAppInventoryInput is the input for s1_list_app_inventory.
type ListAppInventoryInput struct {
	Name    string   `json:"name,omitempty" jsonschema:"Search by application name (partial match)"`
	Vendor  string   `json:"vendor,omitempty" jsonschema:"Search by vendor name (partial match)"`
	OSTypes []string `json:"os_types,omitempty" jsonschema:"Filter: windows, macos, linux"`
	SiteIDs []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Limit   int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor  string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// AppInventorySummary is a compact view of one installed application.
type AppInventorySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Vendor    string `json:"vendor,omitempty"`
	OSType    string `json:"os_type,omitempty"`
	Endpoints int    `json:"endpoints,omitempty"`
	Versions  int    `json:"versions,omitempty"`
	RiskLevel string `json:"risk_level,omitempty"`
}

// ListAppInventoryOutput is the output for s1_list_app_inventory.
type ListAppInventoryOutput struct {
	Applications []AppInventorySummary `json:"applications,omitzero"`
	TotalItems   int                   `json:"total_items,omitempty"`
	NextCursor   string                `json:"next_cursor,omitempty"`
	Hint         string                `json:"hint,omitempty"`
}

// ToolListAppInventory lists installed applications across the fleet.
func ToolListAppInventory(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAppInventoryInput) (*sdkmcp.CallToolResult, ListAppInventoryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAppInventoryInput) (*sdkmcp.CallToolResult, ListAppInventoryOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListAppInventoryOutput{}, err
		}

		result, err := d.Client.ListAppInventory(ctx, &client.ListAppInventoryOptions{
			Limit:          limit,
			Cursor:         input.Cursor,
			SiteIDs:        input.SiteIDs,
			NameContains:   input.Name,
			VendorContains: input.Vendor,
			OSTypes:        input.OSTypes,
		})
		if err != nil {
			return nil, ListAppInventoryOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListAppInventoryOutput{Hint: "No applications found matching criteria."}, nil
		}

		output := ListAppInventoryOutput{
			Applications: make([]AppInventorySummary, len(result.Items)),
			TotalItems:   result.TotalItems,
			NextCursor:   result.NextCursor,
			Hint:         cursorHint(result.NextCursor),
		}
		for i, a := range result.Items {
			output.Applications[i] = AppInventorySummary{
				ID:        a.ID,
				Name:      orUnknown(a.ApplicationName),
				Vendor:    a.ApplicationVendor,
				OSType:    a.OSType,
				Endpoints: a.EndpointsCount,
				Versions:  a.ApplicationVersionsCount,
				RiskLevel: a.RiskLevel,
			}
		}
		return nil, output, nil
	}
}
