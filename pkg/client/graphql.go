package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// AlertQuery contains filters for the unified-alerts GraphQL query.
type AlertQuery struct {
	Limit  int
	Cursor string

	Severity       string
	AnalystVerdict string
	IncidentStatus string
	StorylineID    string
	SiteIDs        []string
}

// Alert is one unified alert, flattened from the edges/node wrapper.
type Alert struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Severity        string `json:"severity,omitempty"`
	AnalystVerdict  string `json:"analystVerdict,omitempty"`
	Classification  string `json:"classification,omitempty"`
	ConfidenceLevel string `json:"confidenceLevel,omitempty"`
	Status          string `json:"status,omitempty"`
	StorylineID     string `json:"storylineId,omitempty"`
	DetectedAt      string `json:"detectedAt,omitempty"`
}

// PageInfo is edge pagination state: when HasNextPage is set, EndCursor is
// the cursor for the next page.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
}

// AlertsPage is one page of alerts.
type AlertsPage struct {
	Alerts   []Alert
	PageInfo PageInfo
}

// DefaultAlertLimit is the page size when the caller does not specify one.
const DefaultAlertLimit = 20

// alertFilter is the wire shape of one filter: exact match on a single
// value or membership in a value set, never both.
type alertFilter struct {
	FieldID     string            `json:"fieldId"`
	StringEqual *stringEqualMatch `json:"stringEqual,omitempty"`
	StringIn    *stringInMatch    `json:"stringIn,omitempty"`
}

type stringEqualMatch struct {
	Value string `json:"value"`
}

type stringInMatch struct {
	Values []string `json:"values"`
}

const alertsQuery = `query GetAlerts($first: Int, $after: String, $filters: [FilterInput!]) {
  alerts(first: $first, after: $after, filters: $filters) {
    edges {
      node {
        id
        severity
        analystVerdict
        name
        classification
        confidenceLevel
        status
        storylineId
        detectedAt
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

type graphqlEnvelope struct {
	Data *struct {
		Alerts *struct {
			Edges []struct {
				Node Alert `json:"node"`
			} `json:"edges"`
			PageInfo PageInfo `json:"pageInfo"`
		} `json:"alerts"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// QueryAlerts runs the unified-alerts GraphQL query. A non-empty top-level
// errors list fails with *GraphQLError even when the HTTP status was a
// success; a response with no alerts payload is a distinct failure from an
// empty result set.
func (c *Client) QueryAlerts(ctx context.Context, query *AlertQuery) (*AlertsPage, error) {
	if query == nil {
		query = &AlertQuery{}
	}

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultAlertLimit
	}

	variables := map[string]any{"first": limit}
	if query.Cursor != "" {
		variables["after"] = query.Cursor
	}
	if filters := buildAlertFilters(query); len(filters) > 0 {
		variables["filters"] = filters
	}

	body := map[string]any{
		"query":     alertsQuery,
		"variables": variables,
	}

	var resp graphqlEnvelope
	if err := c.request(ctx, http.MethodPost, "/unifiedalerts/graphql", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			messages[i] = c.redact(e.Message)
		}
		return nil, &GraphQLError{Messages: messages}
	}

	if resp.Data == nil || resp.Data.Alerts == nil {
		return nil, errors.New("graphql response carried no alert data")
	}

	alerts := make([]Alert, len(resp.Data.Alerts.Edges))
	for i, edge := range resp.Data.Alerts.Edges {
		alerts[i] = edge.Node
	}

	return &AlertsPage{
		Alerts:   alerts,
		PageInfo: resp.Data.Alerts.PageInfo,
	}, nil
}

// buildAlertFilters translates the named filters into the wire filter list.
// Site-set filtering uses the match-any shape; everything else is an exact
// match. Unset filters produce no entry.
func buildAlertFilters(q *AlertQuery) []alertFilter {
	var filters []alertFilter

	equal := func(fieldID, value string) {
		if value != "" {
			filters = append(filters, alertFilter{
				FieldID:     fieldID,
				StringEqual: &stringEqualMatch{Value: value},
			})
		}
	}

	equal("severity", q.Severity)
	equal("analystVerdict", q.AnalystVerdict)
	equal("status", q.IncidentStatus)
	equal("storylineId", q.StorylineID)

	if len(q.SiteIDs) > 0 {
		filters = append(filters, alertFilter{
			FieldID:  "siteId",
			StringIn: &stringInMatch{Values: q.SiteIDs},
		})
	}

	return filters
}
