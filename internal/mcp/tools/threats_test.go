package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// newTestDeps points the deps at a stub console.
func newTestDeps(t *testing.T, handler http.HandlerFunc) *Deps {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Deps{Client: client.New(srv.URL, "test-token")}
}

func TestToolListThreats_summarizesResults(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/api/v2.1/threats", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": [{
				"id": "t-1",
				"agentRealtimeInfo": {"agentComputerName": "web-01"},
				"threatInfo": {
					"threatName": "evil.exe",
					"classification": "Malware",
					"mitigationStatus": "not_mitigated",
					"filePath": "C:\\Temp\\evil.exe"
				}
			}],
			"pagination": {"nextCursor": "next-1", "totalItems": 12}
		}`))
	})

	_, out, err := ToolListThreats(d)(context.Background(), nil, ListThreatsInput{})
	require.NoError(t, err)

	require.Len(t, out.Threats, 1)
	assert.Equal(t, "t-1", out.Threats[0].ID)
	assert.Equal(t, "web-01", out.Threats[0].Computer)
	assert.Equal(t, "evil.exe", out.Threats[0].Name)
	assert.Equal(t, "not_mitigated", out.Threats[0].MitigationStatus)
	assert.Equal(t, 12, out.TotalItems)
	assert.Equal(t, "next-1", out.NextCursor)
	assert.Contains(t, out.Hint, "next-1")
}

func TestToolListThreats_emptyResultGetsHint(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	_, out, err := ToolListThreats(d)(context.Background(), nil, ListThreatsInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Threats)
	assert.Equal(t, "No threats found matching criteria.", out.Hint)
}

func TestToolListThreats_absentInfoBlocksGetPlaceholders(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"id": "t-2"}]}`))
	})

	_, out, err := ToolListThreats(d)(context.Background(), nil, ListThreatsInput{})
	require.NoError(t, err)

	require.Len(t, out.Threats, 1)
	assert.Equal(t, "Unknown", out.Threats[0].Computer)
	assert.Equal(t, "Unknown", out.Threats[0].Name)
	assert.Equal(t, "unknown", out.Threats[0].MitigationStatus)
}

func TestToolListThreats_rejectsExcessiveLimit(t *testing.T) {
	called := false
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, _, err := ToolListThreats(d)(context.Background(), nil, ListThreatsInput{Limit: maxThreatListLimit + 1})
	require.Error(t, err)

	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
	assert.False(t, called, "limit rejected before any remote call")
}

func TestToolGetThreat_notFound(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	_, _, err := ToolGetThreat(d)(context.Background(), nil, GetThreatInput{ThreatID: "missing"})
	require.Error(t, err)

	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeNotFound, coded.Code)
	assert.Contains(t, coded.Message, "missing")
}

func TestToolGetThreat_requiresID(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {})

	_, _, err := ToolGetThreat(d)(context.Background(), nil, GetThreatInput{})
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
}

func TestToolMitigateThreat_rejectsUnknownAction(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {})

	_, _, err := ToolMitigateThreat(d)(context.Background(), nil, MitigateThreatInput{
		ThreatID: "t-1",
		Action:   "vaporize",
	})
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
	assert.Contains(t, coded.Message, "vaporize")
}

func TestToolMitigateThreat_zeroAffectedGetsDistinctHint(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/api/v2.1/threats/mitigate/kill", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {"affected": 0}}`))
	})

	_, out, err := ToolMitigateThreat(d)(context.Background(), nil, MitigateThreatInput{
		ThreatID: "t-404",
		Action:   "kill",
	})
	require.NoError(t, err)
	assert.Zero(t, out.Affected)
	assert.Contains(t, out.Hint, "nothing was mitigated")
}

func TestToolMitigateThreat_success(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"affected": 1}}`))
	})

	_, out, err := ToolMitigateThreat(d)(context.Background(), nil, MitigateThreatInput{
		ThreatID: "t-1",
		Action:   "quarantine",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Affected)
	assert.Equal(t, "quarantine", out.Action)
}

func TestToolListThreats_apiErrorBecomesCoded(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`bad token`))
	})

	_, _, err := ToolListThreats(d)(context.Background(), nil, ListThreatsInput{})
	require.Error(t, err)

	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeS1APIError, coded.Code)
}
