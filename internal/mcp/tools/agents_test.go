package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolListAgents_flattensInterfaces(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/api/v2.1/agents", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": [{
				"id": "a-1",
				"computerName": "web-01",
				"osName": "Ubuntu 22.04",
				"isActive": true,
				"infected": false,
				"networkInterfaces": [
					{"name": "eth0", "inet": ["10.0.0.5"]},
					{"name": "eth1", "inet": ["192.168.1.5", "192.168.1.6"]}
				]
			}]
		}`))
	})

	_, out, err := ToolListAgents(d)(context.Background(), nil, ListAgentsInput{})
	require.NoError(t, err)

	require.Len(t, out.Agents, 1)
	assert.Equal(t, "web-01", out.Agents[0].ComputerName)
	assert.True(t, out.Agents[0].IsActive)
	assert.Equal(t, "10.0.0.5, 192.168.1.5, 192.168.1.6", out.Agents[0].IPs)
}

func TestToolListAgents_infectedFilterOnWire(t *testing.T) {
	var gotInfected string
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		gotInfected = r.URL.Query().Get("infected")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	infected := true
	_, _, err := ToolListAgents(d)(context.Background(), nil, ListAgentsInput{IsInfected: &infected})
	require.NoError(t, err)
	assert.Equal(t, "true", gotInfected)
}

func TestToolGetAgent_notFound(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	_, _, err := ToolGetAgent(d)(context.Background(), nil, GetAgentInput{AgentID: "ghost"})
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeNotFound, coded.Code)
}

func TestToolIsolateAgent_zeroAffectedHint(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/api/v2.1/agents/actions/disconnect", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {"affected": 0}}`))
	})

	_, out, err := ToolIsolateAgent(d)(context.Background(), nil, AgentActionInput{AgentID: "a-404"})
	require.NoError(t, err)
	assert.Zero(t, out.Affected)
	assert.Contains(t, out.Hint, "no isolate was issued")
}

func TestToolReconnectAgent_success(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/api/v2.1/agents/actions/connect", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {"affected": 1}}`))
	})

	_, out, err := ToolReconnectAgent(d)(context.Background(), nil, AgentActionInput{AgentID: "a-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Affected)
	assert.Equal(t, "reconnect", out.Action)
}
