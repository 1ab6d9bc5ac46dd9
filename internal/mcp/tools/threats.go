package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListThreatsInput is the input for s1_list_threats.
type ListThreatsInput struct {
	ComputerName       string   `json:"computer_name,omitempty" jsonschema:"Search by computer/endpoint name (partial match)"`
	ThreatName         string   `json:"threat_name,omitempty" jsonschema:"Search by threat name (partial match)"`
	MitigationStatuses []string `json:"mitigation_statuses,omitempty" jsonschema:"Filter: not_mitigated, mitigated, marked_as_benign"`
	Classifications    []string `json:"classifications,omitempty" jsonschema:"Filter: Malware, PUA, Suspicious"`
	AnalystVerdicts    []string `json:"analyst_verdicts,omitempty" jsonschema:"Filter: true_positive, false_positive, suspicious, undefined"`
	SiteIDs            []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	GroupIDs           []string `json:"group_ids,omitempty" jsonschema:"Filter by group IDs"`
	Resolved           *bool    `json:"resolved,omitempty" jsonschema:"Filter by resolution state"`
	Limit              int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 1000)"`
	Cursor             string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// ThreatSummary is a compact view of one threat.
type ThreatSummary struct {
	ID               string `json:"id"`
	Computer         string `json:"computer"`
	Name             string `json:"name"`
	Classification   string `json:"classification"`
	MitigationStatus string `json:"mitigation_status"`
	Detected         string `json:"detected,omitempty"`
	User             string `json:"user,omitempty"`
	FilePath         string `json:"file_path,omitempty"`
}

// ListThreatsOutput is the output for s1_list_threats.
type ListThreatsOutput struct {
	Threats    []ThreatSummary `json:"threats,omitzero"`
	TotalItems int             `json:"total_items,omitempty"`
	NextCursor string          `json:"next_cursor,omitempty"`
	Hint       string          `json:"hint,omitempty"`
}

// ToolListThreats lists threats with optional filters.
func ToolListThreats(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListThreatsInput) (*sdkmcp.CallToolResult, ListThreatsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListThreatsInput) (*sdkmcp.CallToolResult, ListThreatsOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxThreatListLimit)
		if err != nil {
			return nil, ListThreatsOutput{}, err
		}

		result, err := d.Client.ListThreats(ctx, &client.ListThreatsOptions{
			Limit:                limit,
			Cursor:               input.Cursor,
			SiteIDs:              input.SiteIDs,
			GroupIDs:             input.GroupIDs,
			Resolved:             input.Resolved,
			MitigationStatuses:   input.MitigationStatuses,
			Classifications:      input.Classifications,
			AnalystVerdicts:      input.AnalystVerdicts,
			ComputerNameContains: input.ComputerName,
			ThreatNameContains:   input.ThreatName,
		})
		if err != nil {
			return nil, ListThreatsOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListThreatsOutput{Hint: "No threats found matching criteria."}, nil
		}

		output := ListThreatsOutput{
			Threats:    make([]ThreatSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, t := range result.Items {
			output.Threats[i] = summarizeThreat(t)
		}
		return nil, output, nil
	}
}

func summarizeThreat(t client.Threat) ThreatSummary {
	s := ThreatSummary{ID: t.ID, Computer: "Unknown", Name: "Unknown", Classification: "Unknown", MitigationStatus: "unknown"}
	if t.AgentRealtimeInfo != nil {
		s.Computer = orUnknown(t.AgentRealtimeInfo.AgentComputerName)
	}
	if t.AgentDetectionInfo != nil {
		s.User = t.AgentDetectionInfo.AgentLastLoggedInUserName
	}
	if info := t.ThreatInfo; info != nil {
		s.Name = orUnknown(info.ThreatName)
		s.Classification = orUnknown(info.Classification)
		if info.MitigationStatus != "" {
			s.MitigationStatus = info.MitigationStatus
		}
		if info.CreatedAt != "" {
			s.Detected = FormatTimeAgo(info.CreatedAt)
		}
		s.FilePath = info.FilePath
	}
	return s
}

// GetThreatInput is the input for s1_get_threat.
type GetThreatInput struct {
	ThreatID string `json:"threat_id" jsonschema:"The threat ID to retrieve"`
}

// ThreatDetail is the full view of one threat.
type ThreatDetail struct {
	ID               string `json:"id"`
	Computer         string `json:"computer"`
	Name             string `json:"name"`
	Classification   string `json:"classification"`
	ConfidenceLevel  string `json:"confidence_level,omitempty"`
	MitigationStatus string `json:"mitigation_status"`
	AnalystVerdict   string `json:"analyst_verdict,omitempty"`
	StorylineID      string `json:"storyline_id,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
	User             string `json:"user,omitempty"`
	AgentID          string `json:"agent_id,omitempty"`
	OS               string `json:"os,omitempty"`
	FilePath         string `json:"file_path,omitempty"`
	SHA256           string `json:"sha256,omitempty"`
	SHA1             string `json:"sha1,omitempty"`
	MD5              string `json:"md5,omitempty"`
}

// GetThreatOutput is the output for s1_get_threat.
type GetThreatOutput struct {
	Threat ThreatDetail `json:"threat"`
}

// ToolGetThreat retrieves a single threat by ID.
func ToolGetThreat(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetThreatInput) (*sdkmcp.CallToolResult, GetThreatOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetThreatInput) (*sdkmcp.CallToolResult, GetThreatOutput, error) {
		if input.ThreatID == "" {
			return nil, GetThreatOutput{}, ErrInvalidInput("threat_id is required")
		}

		t, err := d.Client.GetThreat(ctx, input.ThreatID)
		if err != nil {
			return nil, GetThreatOutput{}, WrapS1Error(err)
		}
		if t == nil {
			return nil, GetThreatOutput{}, ErrNotFound("threat", input.ThreatID)
		}

		detail := ThreatDetail{ID: t.ID, Computer: "Unknown", Name: "Unknown", Classification: "Unknown", MitigationStatus: "unknown"}
		if t.AgentRealtimeInfo != nil {
			detail.Computer = orUnknown(t.AgentRealtimeInfo.AgentComputerName)
			detail.AgentID = t.AgentRealtimeInfo.AgentID
		}
		if t.AgentDetectionInfo != nil {
			detail.User = t.AgentDetectionInfo.AgentLastLoggedInUserName
			detail.OS = t.AgentDetectionInfo.AgentOsName
		}
		if info := t.ThreatInfo; info != nil {
			detail.Name = orUnknown(info.ThreatName)
			detail.Classification = orUnknown(info.Classification)
			detail.ConfidenceLevel = info.ConfidenceLevel
			if info.MitigationStatus != "" {
				detail.MitigationStatus = info.MitigationStatus
			}
			detail.AnalystVerdict = info.AnalystVerdict
			detail.StorylineID = info.Storyline
			detail.CreatedAt = info.CreatedAt
			detail.FilePath = info.FilePath
			detail.SHA256 = info.SHA256
			detail.SHA1 = info.SHA1
			detail.MD5 = info.MD5
		}

		return nil, GetThreatOutput{Threat: detail}, nil
	}
}

// MitigateThreatInput is the input for s1_mitigate_threat.
type MitigateThreatInput struct {
	ThreatID string `json:"threat_id" jsonschema:"The threat ID to mitigate"`
	Action   string `json:"action" jsonschema:"Action: kill, quarantine, remediate, rollback-remediation"`
}

// MitigateThreatOutput is the output for s1_mitigate_threat.
type MitigateThreatOutput struct {
	ThreatID string `json:"threat_id"`
	Action   string `json:"action"`
	Affected int    `json:"affected"`
	Hint     string `json:"hint,omitempty"`
}

var mitigationActions = map[string]client.MitigationAction{
	"kill":                 client.MitigationKill,
	"quarantine":           client.MitigationQuarantine,
	"remediate":            client.MitigationRemediate,
	"rollback-remediation": client.MitigationRollbackRemediation,
}

// ToolMitigateThreat applies a mitigation action to one threat.
func ToolMitigateThreat(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MitigateThreatInput) (*sdkmcp.CallToolResult, MitigateThreatOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MitigateThreatInput) (*sdkmcp.CallToolResult, MitigateThreatOutput, error) {
		if input.ThreatID == "" {
			return nil, MitigateThreatOutput{}, ErrInvalidInput("threat_id is required")
		}
		action, ok := mitigationActions[input.Action]
		if !ok {
			return nil, MitigateThreatOutput{}, ErrInvalidInput(
				fmt.Sprintf("unknown action %q: expected kill, quarantine, remediate, or rollback-remediation", input.Action))
		}

		affected, err := d.Client.MitigateThreat(ctx, input.ThreatID, action)
		if err != nil {
			return nil, MitigateThreatOutput{}, WrapS1Error(err)
		}

		output := MitigateThreatOutput{
			ThreatID: input.ThreatID,
			Action:   input.Action,
			Affected: affected,
		}
		if affected == 0 {
			output.Hint = fmt.Sprintf("No threat matched ID %s; nothing was mitigated.", input.ThreatID)
		} else {
			output.Hint = fmt.Sprintf("%s applied to threat %s.", input.Action, input.ThreatID)
		}
		return nil, output, nil
	}
}
