package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOutputSchema_panicsOnNilSlice(t *testing.T) {
	type BadOutput struct {
		Items []string `json:"items"` // no omitzero → nil → null → schema expects array
	}
	assert.Panics(t, func() {
		CheckOutputSchema[BadOutput]("test_bad_tool")
	})
}

func TestCheckOutputSchema_okWithOmitzero(t *testing.T) {
	type GoodOutput struct {
		Items []string `json:"items,omitzero"`
	}
	assert.NotPanics(t, func() {
		CheckOutputSchema[GoodOutput]("test_good_tool")
	})
}

func TestCheckOutputSchema_okWithNoSlices(t *testing.T) {
	type SimpleOutput struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	assert.NotPanics(t, func() {
		CheckOutputSchema[SimpleOutput]("test_simple_tool")
	})
}

func TestCheckOutputSchema_okWithAny(t *testing.T) {
	assert.NotPanics(t, func() {
		CheckOutputSchema[any]("test_any_tool")
	})
}

// Every registered tool's output type must survive the zero-value check;
// a regression here would panic at server startup.
func TestToolOutputTypes_zeroValuesPassSchema(t *testing.T) {
	assert.NotPanics(t, func() {
		CheckOutputSchema[ListThreatsOutput]("s1_list_threats")
		CheckOutputSchema[GetThreatOutput]("s1_get_threat")
		CheckOutputSchema[MitigateThreatOutput]("s1_mitigate_threat")
		CheckOutputSchema[ListAgentsOutput]("s1_list_agents")
		CheckOutputSchema[GetAgentOutput]("s1_get_agent")
		CheckOutputSchema[AgentActionOutput]("s1_isolate_agent")
		CheckOutputSchema[ListAlertsOutput]("s1_list_alerts")
		CheckOutputSchema[RunDVQueryOutput]("s1_run_dv_query")
		CheckOutputSchema[GetDVEventsOutput]("s1_get_dv_events")
		CheckOutputSchema[HashReputationOutput]("s1_get_hash_reputation")
		CheckOutputSchema[ListSitesOutput]("s1_list_sites")
		CheckOutputSchema[GetSiteOutput]("s1_get_site")
		CheckOutputSchema[ListGroupsOutput]("s1_list_groups")
		CheckOutputSchema[GetGroupOutput]("s1_get_group")
		CheckOutputSchema[ListActivitiesOutput]("s1_list_activities")
		CheckOutputSchema[ListActivityTypesOutput]("s1_list_activity_types")
		CheckOutputSchema[ListExclusionsOutput]("s1_list_exclusions")
		CheckOutputSchema[ListAppRisksOutput]("s1_list_app_risks")
		CheckOutputSchema[ListAppInventoryOutput]("s1_list_app_inventory")
		CheckOutputSchema[ListDeviceControlEventsOutput]("s1_list_device_control_events")
		CheckOutputSchema[ListRangerInventoryOutput]("s1_list_ranger_inventory")
		CheckOutputSchema[ListTagsOutput]("s1_list_tags")
		CheckOutputSchema[ListIOCsOutput]("s1_list_iocs")
	})
}
