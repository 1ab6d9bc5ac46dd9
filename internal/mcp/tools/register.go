package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: s1_list_threats
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_threats",
		Description: "List threats detected across the fleet. Filter by computer name, threat name, mitigation status, classification, analyst verdict, site, group, or resolution state. Returns compact threat summaries with a pagination cursor.",
	}, ToolListThreats(d))

	// Tool 2: s1_get_threat
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_get_threat",
		Description: "Get full details of a single threat by ID, including file hashes, storyline ID, and the detecting agent. Use the storyline ID with s1_list_alerts or a Deep Visibility query to correlate activity.",
	}, ToolGetThreat(d))

	// Tool 3: s1_mitigate_threat
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_mitigate_threat",
		Description: "Apply a mitigation action to a threat: kill, quarantine, remediate, or rollback-remediation. Reports how many threats were affected; zero means the ID matched nothing.",
	}, ToolMitigateThreat(d))

	// Tool 4: s1_list_agents
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_agents",
		Description: "List endpoint agents. Filter by computer name, OS type, connectivity, infection state, site, or group. Returns compact agent summaries with a pagination cursor.",
	}, ToolListAgents(d))

	// Tool 5: s1_get_agent
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_get_agent",
		Description: "Get full details of a single agent by ID, including network interfaces, last logged-in user, and isolation state.",
	}, ToolGetAgent(d))

	// Tool 6: s1_isolate_agent
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_isolate_agent",
		Description: "Disconnect an agent from the network while keeping its management channel to the console. Use s1_reconnect_agent to lift the isolation.",
	}, ToolIsolateAgent(d))

	// Tool 7: s1_reconnect_agent
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_reconnect_agent",
		Description: "Restore network connectivity for a previously isolated agent.",
	}, ToolReconnectAgent(d))

	// Tool 8: s1_list_alerts
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_alerts",
		Description: "Query unified alerts. Filter by severity, analyst verdict, incident status, storyline ID, or site. Storyline ID correlates alerts with threats and Deep Visibility events.",
	}, ToolListAlerts(d))

	// Tool 9: s1_run_dv_query
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_run_dv_query",
		Description: "Run a Deep Visibility query over endpoint telemetry (process, network, file, registry, DNS events). Requires a query string plus from_date and to_date. Waits up to 30 seconds for completion; if the query is still running, retrieve results later with s1_get_dv_events using the returned query_id.",
	}, ToolRunDVQuery(d))

	// Tool 10: s1_get_dv_events
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_get_dv_events",
		Description: "Retrieve events from a Deep Visibility query by query_id. Reports progress if the query is still running; otherwise returns one page of events with a pagination cursor.",
	}, ToolGetDVEvents(d))

	// Tool 11: s1_get_hash_reputation
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_get_hash_reputation",
		Description: "Look up the reputation rank of a SHA1 or SHA256 file hash. Rank runs from 0 (benign) to 10 (malicious).",
	}, ToolHashReputation(d))

	// Tool 12: s1_list_sites
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_sites",
		Description: "List sites with license usage, including a fleet-wide license rollup. Filter by name, state, or site type.",
	}, ToolListSites(d))

	// Tool 13: s1_get_site
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_get_site",
		Description: "Get full details of a single site by ID.",
	}, ToolGetSite(d))

	// Tool 14: s1_list_groups
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_groups",
		Description: "List agent groups. Filter by name, type (static, dynamic, pinned), or site.",
	}, ToolListGroups(d))

	// Tool 15: s1_get_group
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_get_group",
		Description: "Get full details of a single group by ID.",
	}, ToolGetGroup(d))

	// Tool 16: s1_list_activities
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_activities",
		Description: "List audit-trail activities: management actions, policy changes, threat lifecycle events. Filter by activity type code, site, agent, threat, or time window.",
	}, ToolListActivities(d))

	// Tool 17: s1_list_activity_types
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_activity_types",
		Description: "Enumerate the numeric activity-type codes accepted by s1_list_activities.",
	}, ToolListActivityTypes(d))

	// Tool 18: s1_list_exclusions
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_exclusions",
		Description: "List allowlist exclusions (paths, hashes, certificates, browsers, file types). Filter by type, OS, site, or value.",
	}, ToolListExclusions(d))

	// Tool 19: s1_list_restrictions
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_restrictions",
		Description: "List blocklist restrictions. Same filter surface as s1_list_exclusions.",
	}, ToolListRestrictions(d))

	// Tool 20: s1_list_app_risks
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_app_risks",
		Description: "List CVE findings from application management. Filter by severity, CVE ID, application name, in-the-wild exploitation, or site.",
	}, ToolListAppRisks(d))

	// Tool 21: s1_list_app_inventory
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_app_inventory",
		Description: "List applications installed across the fleet with endpoint and version counts. Filter by name, vendor, OS type, or site.",
	}, ToolListAppInventory(d))

	// Tool 22: s1_list_device_control_events
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_device_control_events",
		Description: "List USB and Bluetooth device-control events. Filter by interface, event type, agent, site, or time window.",
	}, ToolListDeviceControlEvents(d))

	// Tool 23: s1_list_ranger_inventory
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_ranger_inventory",
		Description: "List network devices discovered by Ranger, managed and unmanaged. Filter by managed state, device type, OS, IP, MAC address, or hostname.",
	}, ToolListRangerInventory(d))

	// Tool 24: s1_list_tags
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_tags",
		Description: "List scope tags of a given type: firewall, network-quarantine, or device-inventory. The type parameter is required.",
	}, ToolListTags(d))

	// Tool 25: s1_list_iocs
	AddTool(srv, &sdkmcp.Tool{
		Name:        "s1_list_iocs",
		Description: "List threat-intelligence indicators of compromise (IP, DNS, URL, hash). Filter by type, value, name, source, or creation time.",
	}, ToolListIOCs(d))
}
