package tools

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListRangerInventoryInput is the input for s1_list_ranger_inventory.
type ListRangerInventoryInput struct {
	ManagedStates []string `json:"managed_states,omitempty" jsonschema:"Filter: managed, unmanaged, unsupported"`
	DeviceTypes   []string `json:"device_types,omitempty" jsonschema:"Filter by device type (Workstation, Server, Mobile, IoT)"`
	OSTypes       []string `json:"os_types,omitempty" jsonschema:"Filter: windows, macos, linux"`
	LocalIP       string   `json:"local_ip,omitempty" jsonschema:"Search by local IP (partial match)"`
	MACAddress    string   `json:"mac_address,omitempty" jsonschema:"Search by MAC address (partial match)"`
	Hostname      string   `json:"hostname,omitempty" jsonschema:"Search by hostname (partial match)"`
	SiteIDs       []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Limit         int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor        string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// RangerDeviceSummary is a compact view of one discovered network device.
type RangerDeviceSummary struct {
	ID           string `json:"id"`
	Hostnames    string `json:"hostnames,omitempty"`
	LocalIP      string `json:"local_ip,omitempty"`
	MACAddress   string `json:"mac_address,omitempty"`
	OS           string `json:"os,omitempty"`
	DeviceType   string `json:"device_type,omitempty"`
	ManagedState string `json:"managed_state,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	FirstSeen    string `json:"first_seen,omitempty"`
	LastSeen     string `json:"last_seen,omitempty"`
	SiteName     string `json:"site_name,omitempty"`
}

// ListRangerInventoryOutput is the output for s1_list_ranger_inventory.
type ListRangerInventoryOutput struct {
	Devices    []RangerDeviceSummary `json:"devices,omitzero"`
	TotalItems int                   `json:"total_items,omitempty"`
	NextCursor string                `json:"next_cursor,omitempty"`
	Hint       string                `json:"hint,omitempty"`
}

// ToolListRangerInventory lists network devices discovered by Ranger.
func ToolListRangerInventory(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListRangerInventoryInput) (*sdkmcp.CallToolResult, ListRangerInventoryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListRangerInventoryInput) (*sdkmcp.CallToolResult, ListRangerInventoryOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListRangerInventoryOutput{}, err
		}

		result, err := d.Client.ListRangerInventory(ctx, &client.ListRangerInventoryOptions{
			Limit:              limit,
			Cursor:             input.Cursor,
			SiteIDs:            input.SiteIDs,
			ManagedStates:      input.ManagedStates,
			DeviceTypes:        input.DeviceTypes,
			OSTypes:            input.OSTypes,
			LocalIPContains:    input.LocalIP,
			MACAddressContains: input.MACAddress,
			HostnameContains:   input.Hostname,
		})
		if err != nil {
			return nil, ListRangerInventoryOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListRangerInventoryOutput{Hint: "No network devices found matching criteria."}, nil
		}

		output := ListRangerInventoryOutput{
			Devices:    make([]RangerDeviceSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, dev := range result.Items {
			entry := RangerDeviceSummary{
				ID:           dev.ID,
				Hostnames:    strings.Join(dev.Hostnames, ", "),
				LocalIP:      dev.LocalIP,
				MACAddress:   dev.MACAddress,
				OS:           dev.OSName,
				DeviceType:   dev.DeviceType,
				ManagedState: dev.ManagedState,
				Manufacturer: dev.Manufacturer,
				SiteName:     dev.SiteName,
			}
			if dev.FirstSeen != "" {
				entry.FirstSeen = FormatTimeAgo(dev.FirstSeen)
			}
			if dev.LastSeen != "" {
				entry.LastSeen = FormatTimeAgo(dev.LastSeen)
			}
			output.Devices[i] = entry
		}
		return nil, output, nil
	}
}

// ListTagsInput is the input for s1_list_tags.
type ListTagsInput struct {
	Type    string   `json:"type" jsonschema:"Tag type (required): firewall, network-quarantine, device-inventory"`
	Name    string   `json:"name,omitempty" jsonschema:"Search by tag name (partial match)"`
	SiteIDs []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Limit   int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor  string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// TagSummary is a compact view of one scope tag.
type TagSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Description string `json:"description,omitempty"`
}

// ListTagsOutput is the output for s1_list_tags.
type ListTagsOutput struct {
	Tags       []TagSummary `json:"tags,omitzero"`
	TotalItems int          `json:"total_items,omitempty"`
	NextCursor string       `json:"next_cursor,omitempty"`
	Hint       string       `json:"hint,omitempty"`
}

// ToolListTags lists scope tags of one type.
func ToolListTags(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListTagsInput) (*sdkmcp.CallToolResult, ListTagsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListTagsInput) (*sdkmcp.CallToolResult, ListTagsOutput, error) {
		if input.Type == "" {
			return nil, ListTagsOutput{}, ErrInvalidInput("type is required: firewall, network-quarantine, or device-inventory")
		}
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListTagsOutput{}, err
		}

		result, err := d.Client.ListTags(ctx, &client.ListTagsOptions{
			Type:         input.Type,
			Limit:        limit,
			Cursor:       input.Cursor,
			SiteIDs:      input.SiteIDs,
			NameContains: input.Name,
		})
		if err != nil {
			return nil, ListTagsOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListTagsOutput{Hint: "No tags found matching criteria."}, nil
		}

		output := ListTagsOutput{
			Tags:       make([]TagSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, t := range result.Items {
			output.Tags[i] = TagSummary{
				ID:          t.ID,
				Name:        orUnknown(t.Name),
				Type:        t.Type,
				Kind:        t.Kind,
				Scope:       t.ScopeName,
				Description: t.Description,
			}
		}
		return nil, output, nil
	}
}

// ListIOCsInput is the input for s1_list_iocs.
type ListIOCsInput struct {
	Type          string   `json:"type,omitempty" jsonschema:"Filter: IPV4, DNS, URL, SHA1, SHA256, MD5"`
	Value         string   `json:"value,omitempty" jsonschema:"Filter by exact indicator value"`
	Name          string   `json:"name,omitempty" jsonschema:"Search by indicator name (partial match)"`
	Source        string   `json:"source,omitempty" jsonschema:"Filter by threat-intel source"`
	CreatedAfter  string   `json:"created_after,omitempty" jsonschema:"Only indicators created after this time (ISO 8601)"`
	CreatedBefore string   `json:"created_before,omitempty" jsonschema:"Only indicators created before this time (ISO 8601)"`
	SiteIDs       []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	Limit         int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor        string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// IOCSummary is a compact view of one indicator of compromise.
type IOCSummary struct {
	ID         string `json:"id"`
	Type       string `json:"type,omitempty"`
	Value      string `json:"value"`
	Severity   string `json:"severity,omitempty"`
	Source     string `json:"source,omitempty"`
	Name       string `json:"name,omitempty"`
	Method     string `json:"method,omitempty"`
	Created    string `json:"created,omitempty"`
	ValidUntil string `json:"valid_until,omitempty"`
}

// ListIOCsOutput is the output for s1_list_iocs.
type ListIOCsOutput struct {
	Indicators []IOCSummary `json:"indicators,omitzero"`
	TotalItems int          `json:"total_items,omitempty"`
	NextCursor string       `json:"next_cursor,omitempty"`
	Hint       string       `json:"hint,omitempty"`
}

// ToolListIOCs lists threat-intelligence indicators of compromise.
func ToolListIOCs(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListIOCsInput) (*sdkmcp.CallToolResult, ListIOCsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListIOCsInput) (*sdkmcp.CallToolResult, ListIOCsOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListIOCsOutput{}, err
		}

		result, err := d.Client.ListIOCs(ctx, &client.ListIOCsOptions{
			Limit:         limit,
			Cursor:        input.Cursor,
			SiteIDs:       input.SiteIDs,
			Type:          input.Type,
			Value:         input.Value,
			Source:        input.Source,
			NameContains:  input.Name,
			CreatedAfter:  input.CreatedAfter,
			CreatedBefore: input.CreatedBefore,
		})
		if err != nil {
			return nil, ListIOCsOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListIOCsOutput{Hint: "No indicators found matching criteria."}, nil
		}

		output := ListIOCsOutput{
			Indicators: make([]IOCSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, ioc := range result.Items {
			entry := IOCSummary{
				ID:         ioc.ID,
				Type:       ioc.Type,
				Value:      orUnknown(ioc.Value),
				Severity:   ioc.Severity,
				Source:     ioc.Source,
				Name:       ioc.Name,
				Method:     ioc.Method,
				ValidUntil: ioc.ValidUntil,
			}
			if ioc.CreationTime != "" {
				entry.Created = FormatTimeAgo(ioc.CreationTime)
			}
			output.Indicators[i] = entry
		}
		return nil, output, nil
	}
}
