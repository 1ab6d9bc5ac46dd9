package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolListAlerts_pagination(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/api/v2.1/unifiedalerts/graphql", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": {
				"alerts": {
					"edges": [{"node": {"id": "al-1", "name": "Sus activity", "severity": "HIGH", "storylineId": "sl-9"}}],
					"pageInfo": {"hasNextPage": true, "endCursor": "cur-next"}
				}
			}
		}`))
	})

	_, out, err := ToolListAlerts(d)(context.Background(), nil, ListAlertsInput{Severity: "HIGH"})
	require.NoError(t, err)

	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "sl-9", out.Alerts[0].StorylineID)
	assert.Equal(t, "cur-next", out.NextCursor)
	assert.Contains(t, out.Hint, "cur-next")
}

func TestToolListAlerts_lastPageHasNoCursor(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"alerts": {
					"edges": [{"node": {"id": "al-1", "name": "x"}}],
					"pageInfo": {"hasNextPage": false, "endCursor": "stale"}
				}
			}
		}`))
	})

	_, out, err := ToolListAlerts(d)(context.Background(), nil, ListAlertsInput{})
	require.NoError(t, err)
	assert.Empty(t, out.NextCursor, "cursor suppressed when no further pages exist")
	assert.Empty(t, out.Hint)
}

func TestToolListAlerts_emptyResultGetsHint(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"alerts": {"edges": [], "pageInfo": {"hasNextPage": false}}}}`))
	})

	_, out, err := ToolListAlerts(d)(context.Background(), nil, ListAlertsInput{})
	require.NoError(t, err)
	assert.Equal(t, "No alerts found matching criteria.", out.Hint)
}

func TestToolListAlerts_graphqlErrorsBecomeCoded(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "unknown field"}]}`))
	})

	_, _, err := ToolListAlerts(d)(context.Background(), nil, ListAlertsInput{})
	require.Error(t, err)

	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeQueryError, coded.Code)
}

func TestToolListAlerts_rejectsExcessiveLimit(t *testing.T) {
	d := newTestDeps(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no remote call expected")
	})

	_, _, err := ToolListAlerts(d)(context.Background(), nil, ListAlertsInput{Limit: maxAlertListLimit + 1})
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
}
