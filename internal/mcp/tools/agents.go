package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// ListAgentsInput is the input for s1_list_agents.
type ListAgentsInput struct {
	ComputerName string   `json:"computer_name,omitempty" jsonschema:"Search by computer name (partial match)"`
	OSTypes      []string `json:"os_types,omitempty" jsonschema:"Filter: windows, macos, linux"`
	IsActive     *bool    `json:"is_active,omitempty" jsonschema:"Filter by connectivity (true = online)"`
	IsInfected   *bool    `json:"is_infected,omitempty" jsonschema:"Filter by infection state"`
	SiteIDs      []string `json:"site_ids,omitempty" jsonschema:"Filter by site IDs"`
	GroupIDs     []string `json:"group_ids,omitempty" jsonschema:"Filter by group IDs"`
	Limit        int      `json:"limit,omitempty" jsonschema:"Max results (default 25, max 100)"`
	Cursor       string   `json:"cursor,omitempty" jsonschema:"Pagination cursor from previous response"`
}

// AgentSummary is a compact view of one agent.
type AgentSummary struct {
	ID           string `json:"id"`
	ComputerName string `json:"computer_name"`
	OS           string `json:"os,omitempty"`
	AgentVersion string `json:"agent_version,omitempty"`
	IsActive     bool   `json:"is_active"`
	IsInfected   bool   `json:"is_infected"`
	NetworkState string `json:"network_state,omitempty"`
	LastActive   string `json:"last_active,omitempty"`
	IPs          string `json:"ips,omitempty"`
}

// ListAgentsOutput is the output for s1_list_agents.
type ListAgentsOutput struct {
	Agents     []AgentSummary `json:"agents,omitzero"`
	TotalItems int            `json:"total_items,omitempty"`
	NextCursor string         `json:"next_cursor,omitempty"`
	Hint       string         `json:"hint,omitempty"`
}

// ToolListAgents lists endpoint agents with optional filters.
func ToolListAgents(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAgentsInput) (*sdkmcp.CallToolResult, ListAgentsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListAgentsInput) (*sdkmcp.CallToolResult, ListAgentsOutput, error) {
		limit, err := resolveLimit(input.Limit, defaultListLimit, maxListLimit)
		if err != nil {
			return nil, ListAgentsOutput{}, err
		}

		result, err := d.Client.ListAgents(ctx, &client.ListAgentsOptions{
			Limit:                limit,
			Cursor:               input.Cursor,
			SiteIDs:              input.SiteIDs,
			GroupIDs:             input.GroupIDs,
			OSTypes:              input.OSTypes,
			IsActive:             input.IsActive,
			IsInfected:           input.IsInfected,
			ComputerNameContains: input.ComputerName,
		})
		if err != nil {
			return nil, ListAgentsOutput{}, WrapS1Error(err)
		}

		if len(result.Items) == 0 {
			return nil, ListAgentsOutput{Hint: "No agents found matching criteria."}, nil
		}

		output := ListAgentsOutput{
			Agents:     make([]AgentSummary, len(result.Items)),
			TotalItems: result.TotalItems,
			NextCursor: result.NextCursor,
			Hint:       cursorHint(result.NextCursor),
		}
		for i, a := range result.Items {
			output.Agents[i] = summarizeAgent(a)
		}
		return nil, output, nil
	}
}

func summarizeAgent(a client.Agent) AgentSummary {
	s := AgentSummary{
		ID:           a.ID,
		ComputerName: orUnknown(a.ComputerName),
		OS:           a.OSName,
		AgentVersion: a.AgentVersion,
		IsActive:     a.IsActive,
		IsInfected:   a.Infected,
		NetworkState: a.NetworkStatus,
	}
	if a.LastActiveDate != "" {
		s.LastActive = FormatTimeAgo(a.LastActiveDate)
	}
	var ips []string
	for _, iface := range a.NetworkInterfaces {
		ips = append(ips, iface.Inet...)
	}
	s.IPs = strings.Join(ips, ", ")
	return s
}

// GetAgentInput is the input for s1_get_agent.
type GetAgentInput struct {
	AgentID string `json:"agent_id" jsonschema:"The agent ID to retrieve"`
}

// AgentDetail is the full view of one agent.
type AgentDetail struct {
	ID               string `json:"id"`
	ComputerName     string `json:"computer_name"`
	OS               string `json:"os,omitempty"`
	AgentVersion     string `json:"agent_version,omitempty"`
	IsActive         bool   `json:"is_active"`
	IsInfected       bool   `json:"is_infected"`
	IsDecommissioned bool   `json:"is_decommissioned,omitempty"`
	NetworkState     string `json:"network_state,omitempty"`
	LastActive       string `json:"last_active,omitempty"`
	LastLoggedInUser string `json:"last_logged_in_user,omitempty"`
	Domain           string `json:"domain,omitempty"`
	ExternalIP       string `json:"external_ip,omitempty"`
	SiteName         string `json:"site_name,omitempty"`
	GroupName        string `json:"group_name,omitempty"`
	IPs              string `json:"ips,omitempty"`
}

// GetAgentOutput is the output for s1_get_agent.
type GetAgentOutput struct {
	Agent AgentDetail `json:"agent"`
}

// ToolGetAgent retrieves a single agent by ID.
func ToolGetAgent(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetAgentInput) (*sdkmcp.CallToolResult, GetAgentOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetAgentInput) (*sdkmcp.CallToolResult, GetAgentOutput, error) {
		if input.AgentID == "" {
			return nil, GetAgentOutput{}, ErrInvalidInput("agent_id is required")
		}

		a, err := d.Client.GetAgent(ctx, input.AgentID)
		if err != nil {
			return nil, GetAgentOutput{}, WrapS1Error(err)
		}
		if a == nil {
			return nil, GetAgentOutput{}, ErrNotFound("agent", input.AgentID)
		}

		detail := AgentDetail{
			ID:               a.ID,
			ComputerName:     orUnknown(a.ComputerName),
			OS:               a.OSName,
			AgentVersion:     a.AgentVersion,
			IsActive:         a.IsActive,
			IsInfected:       a.Infected,
			IsDecommissioned: a.IsDecommissioned,
			NetworkState:     a.NetworkStatus,
			LastLoggedInUser: a.LastLoggedInUserName,
			Domain:           a.Domain,
			ExternalIP:       a.ExternalIP,
			SiteName:         a.SiteName,
			GroupName:        a.GroupName,
		}
		if a.LastActiveDate != "" {
			detail.LastActive = FormatTimeAgo(a.LastActiveDate)
		}
		var ips []string
		for _, iface := range a.NetworkInterfaces {
			ips = append(ips, iface.Inet...)
		}
		detail.IPs = strings.Join(ips, ", ")

		return nil, GetAgentOutput{Agent: detail}, nil
	}
}

// AgentActionInput is the input for s1_isolate_agent and s1_reconnect_agent.
type AgentActionInput struct {
	AgentID string `json:"agent_id" jsonschema:"The agent ID to act on"`
}

// AgentActionOutput is the output for agent network actions.
type AgentActionOutput struct {
	AgentID  string `json:"agent_id"`
	Action   string `json:"action"`
	Affected int    `json:"affected"`
	Hint     string `json:"hint,omitempty"`
}

// ToolIsolateAgent disconnects an agent from the network.
func ToolIsolateAgent(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input AgentActionInput) (*sdkmcp.CallToolResult, AgentActionOutput, error) {
	return agentAction(d, "isolate", func(ctx context.Context, id string) (int, error) {
		return d.Client.IsolateAgent(ctx, id)
	})
}

// ToolReconnectAgent restores an isolated agent's network connectivity.
func ToolReconnectAgent(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input AgentActionInput) (*sdkmcp.CallToolResult, AgentActionOutput, error) {
	return agentAction(d, "reconnect", func(ctx context.Context, id string) (int, error) {
		return d.Client.ReconnectAgent(ctx, id)
	})
}

func agentAction(d *Deps, name string, run func(ctx context.Context, id string) (int, error)) func(ctx context.Context, req *sdkmcp.CallToolRequest, input AgentActionInput) (*sdkmcp.CallToolResult, AgentActionOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input AgentActionInput) (*sdkmcp.CallToolResult, AgentActionOutput, error) {
		if input.AgentID == "" {
			return nil, AgentActionOutput{}, ErrInvalidInput("agent_id is required")
		}

		affected, err := run(ctx, input.AgentID)
		if err != nil {
			return nil, AgentActionOutput{}, WrapS1Error(err)
		}

		output := AgentActionOutput{AgentID: input.AgentID, Action: name, Affected: affected}
		if affected == 0 {
			output.Hint = fmt.Sprintf("No agent matched ID %s; no %s was issued.", input.AgentID, name)
		} else {
			output.Hint = fmt.Sprintf("%s issued for agent %s.", name, input.AgentID)
		}
		return nil, output, nil
	}
}
