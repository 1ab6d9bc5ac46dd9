package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_sendsAuthHeaderAndPrefix(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(page[Threat]{})
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token")
	_, err := c.ListThreats(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "ApiToken secret-token", gotAuth)
	assert.Equal(t, "/web/api/v2.1/threats", gotPath)
}

func TestClient_stripsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(page[Agent]{})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "tok")
	_, err := c.ListAgents(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/web/api/v2.1/agents", gotPath)
}

func TestClient_apiErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"detail":"no such threat"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.ListThreats(context.Background(), nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "no such threat")
}

func TestClient_redactsTokenFromErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`invalid token super-secret-token provided`))
	}))
	defer srv.Close()

	c := New(srv.URL, "super-secret-token")
	_, err := c.ListAgents(context.Background(), nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.NotContains(t, apiErr.Error(), "super-secret-token")
	assert.Contains(t, apiErr.Body, RedactedMarker)
}

func TestClient_timeoutProducesTimeoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(page[Threat]{})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok", WithTimeout(20*time.Millisecond))
	_, err := c.ListThreats(context.Background(), nil)
	require.Error(t, err)

	var timeoutErr *TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.True(t, timeoutErr.Timeout())
}

func TestListThreats_filterSerialization(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(page[Threat]{})
	}))
	defer srv.Close()

	resolved := false
	c := New(srv.URL, "tok")
	_, err := c.ListThreats(context.Background(), &ListThreatsOptions{
		Limit:                10,
		Resolved:             &resolved,
		MitigationStatuses:   []string{"not_mitigated", "mitigated"},
		ComputerNameContains: "web-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "10", gotQuery["limit"][0])
	assert.Equal(t, "false", gotQuery["resolved"][0])
	assert.Equal(t, "not_mitigated,mitigated", gotQuery["mitigationStatuses"][0])
	assert.Equal(t, "web-01", gotQuery["computerName__contains"][0])
	// Unset filters must not appear at all.
	assert.NotContains(t, gotQuery, "classifications")
	assert.NotContains(t, gotQuery, "siteIds")
	assert.NotContains(t, gotQuery, "cursor")
}

func TestGetThreat_noMatchReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "t-123", r.URL.Query().Get("ids"))
		_ = json.NewEncoder(w).Encode(page[Threat]{})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	threat, err := c.GetThreat(context.Background(), "t-123")
	require.NoError(t, err)
	assert.Nil(t, threat)
}

func TestMitigateThreat_postsFilterAndReturnsAffected(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(affectedResponse{Data: struct {
			Affected int `json:"affected"`
		}{Affected: 1}})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	affected, err := c.MitigateThreat(context.Background(), "t-9", MitigationQuarantine)
	require.NoError(t, err)

	assert.Equal(t, 1, affected)
	assert.Equal(t, "/web/api/v2.1/threats/mitigate/quarantine", gotPath)
	filter := gotBody["filter"].(map[string]any)
	assert.Equal(t, []any{"t-9"}, filter["ids"].([]any))
}

func TestListSites_nestedLicenseRollup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {
				"allSites": {"activeLicenses": 40, "totalLicenses": 100},
				"sites": [{"id": "s1", "name": "HQ"}]
			},
			"pagination": {"nextCursor": "abc", "totalItems": 7}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	result, err := c.ListSites(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 40, result.ActiveLicenses)
	assert.Equal(t, 100, result.TotalLicenses)
	require.Len(t, result.Sites, 1)
	assert.Equal(t, "HQ", result.Sites[0].Name)
	assert.Equal(t, "abc", result.NextCursor)
	assert.Equal(t, 7, result.TotalItems)
}

func TestAgentActions_hitDistinctEndpoints(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode(affectedResponse{Data: struct {
			Affected int `json:"affected"`
		}{Affected: 1}})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.IsolateAgent(context.Background(), "a-1")
	require.NoError(t, err)
	_, err = c.ReconnectAgent(context.Background(), "a-1")
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/web/api/v2.1/agents/actions/disconnect", paths[0])
	assert.Equal(t, "/web/api/v2.1/agents/actions/connect", paths[1])
}

func TestHashReputation_unwrapsRank(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/hashes/")
		_, _ = w.Write([]byte(`{"data": {"rank": 7}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	rep, err := c.HashReputation(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, 7, rep.Rank)
}
