package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAlerts_flattensEdges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/web/api/v2.1/unifiedalerts/graphql", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": {
				"alerts": {
					"edges": [
						{"node": {"id": "al-1", "name": "Sus PowerShell", "severity": "HIGH"}},
						{"node": {"id": "al-2", "name": "Cred dump", "severity": "CRITICAL"}}
					],
					"pageInfo": {"hasNextPage": true, "endCursor": "cur-2"}
				}
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	page, err := c.QueryAlerts(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, page.Alerts, 2)
	assert.Equal(t, "al-1", page.Alerts[0].ID)
	assert.Equal(t, "CRITICAL", page.Alerts[1].Severity)
	assert.True(t, page.PageInfo.HasNextPage)
	assert.Equal(t, "cur-2", page.PageInfo.EndCursor)
}

func TestQueryAlerts_filterWireShapes(t *testing.T) {
	var gotBody struct {
		Variables struct {
			First   int             `json:"first"`
			After   string          `json:"after"`
			Filters json.RawMessage `json:"filters"`
		} `json:"variables"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"data": {"alerts": {"edges": [], "pageInfo": {"hasNextPage": false}}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.QueryAlerts(context.Background(), &AlertQuery{
		Limit:    5,
		Cursor:   "cur-1",
		Severity: "HIGH",
		SiteIDs:  []string{"s1", "s2"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, gotBody.Variables.First)
	assert.Equal(t, "cur-1", gotBody.Variables.After)

	var filters []map[string]any
	require.NoError(t, json.Unmarshal(gotBody.Variables.Filters, &filters))
	require.Len(t, filters, 2)

	// Single-value filters use stringEqual, set filters use stringIn.
	assert.Equal(t, "severity", filters[0]["fieldId"])
	assert.Equal(t, map[string]any{"value": "HIGH"}, filters[0]["stringEqual"])
	assert.NotContains(t, filters[0], "stringIn")

	assert.Equal(t, "siteId", filters[1]["fieldId"])
	assert.Equal(t, map[string]any{"values": []any{"s1", "s2"}}, filters[1]["stringIn"])
	assert.NotContains(t, filters[1], "stringEqual")
}

func TestQueryAlerts_noFiltersOmitsVariable(t *testing.T) {
	var gotVariables map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotVariables = body["variables"].(map[string]any)
		_, _ = w.Write([]byte(`{"data": {"alerts": {"edges": [], "pageInfo": {"hasNextPage": false}}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.QueryAlerts(context.Background(), &AlertQuery{})
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultAlertLimit), gotVariables["first"])
	assert.NotContains(t, gotVariables, "filters")
	assert.NotContains(t, gotVariables, "after")
}

func TestQueryAlerts_errorsListFailsDespite200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "field not found"}, {"message": "bad cursor"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.QueryAlerts(context.Background(), nil)
	require.Error(t, err)

	var gqlErr *GraphQLError
	require.True(t, errors.As(err, &gqlErr))
	assert.Len(t, gqlErr.Messages, 2)
	assert.Contains(t, gqlErr.Error(), "field not found")
}

func TestQueryAlerts_redactsTokenInErrorMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors": [{"message": "denied for token sk-very-secret"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "sk-very-secret")
	_, err := c.QueryAlerts(context.Background(), nil)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "sk-very-secret")
	assert.Contains(t, err.Error(), RedactedMarker)
}

func TestQueryAlerts_missingDataIsDistinctFromEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.QueryAlerts(context.Background(), nil)
	require.Error(t, err)

	var gqlErr *GraphQLError
	assert.False(t, errors.As(err, &gqlErr))
	assert.Contains(t, err.Error(), "no alert data")
}

func TestQueryAlerts_emptyEdgesIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"alerts": {"edges": [], "pageInfo": {"hasNextPage": false}}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	page, err := c.QueryAlerts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, page.Alerts)
	assert.False(t, page.PageInfo.HasNextPage)
}
