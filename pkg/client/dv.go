package client

import (
	"context"
	"fmt"
)

// DVQueryRequest describes a Deep Visibility search to submit.
type DVQueryRequest struct {
	Query      string   `json:"query"`
	FromDate   string   `json:"fromDate"`
	ToDate     string   `json:"toDate"`
	SiteIDs    []string `json:"siteIds,omitempty"`
	GroupIDs   []string `json:"groupIds,omitempty"`
	AccountIDs []string `json:"accountIds,omitempty"`
}

// DVQueryCreated is the acknowledgement of a submitted query.
type DVQueryCreated struct {
	QueryID string `json:"queryId"`
	Status  string `json:"status,omitempty"`
}

// DVQueryStatus is the server-side lifecycle state of a query. Status is
// one of RUNNING, FINISHED, FAILED, CANCELED; the client observes it, never
// sets it.
type DVQueryStatus struct {
	QueryID        string `json:"queryId,omitempty"`
	Status         string `json:"status"`
	ProgressStatus int    `json:"progressStatus,omitempty"`
	ResponseError  string `json:"responseError,omitempty"`
}

// DVEvent is one Deep Visibility event. The shape is heterogeneous: only
// identity, time, and type are always present.
type DVEvent struct {
	ID                 string `json:"id"`
	EventType          string `json:"eventType,omitempty"`
	EventTime          string `json:"eventTime,omitempty"`
	AgentID            string `json:"agentId,omitempty"`
	AgentName          string `json:"agentName,omitempty"`
	ProcessName        string `json:"processName,omitempty"`
	ProcessImagePath   string `json:"processImagePath,omitempty"`
	ProcessCommandLine string `json:"processCommandLine,omitempty"`
	ProcessUser        string `json:"user,omitempty"`
	ParentProcessName  string `json:"parentProcessName,omitempty"`
	SrcIP              string `json:"srcIp,omitempty"`
	DstIP              string `json:"dstIp,omitempty"`
	DstPort            int    `json:"dstPort,omitempty"`
	FilePath           string `json:"filePath,omitempty"`
	SHA1               string `json:"sha1,omitempty"`
	SHA256             string `json:"sha256,omitempty"`
	RegistryPath       string `json:"registryPath,omitempty"`
	RegistryValue      string `json:"registryValue,omitempty"`
	DNSRequest         string `json:"dnsRequest,omitempty"`
	URL                string `json:"url,omitempty"`
}

// CreateDVQuery submits a Deep Visibility query and returns its opaque ID.
func (c *Client) CreateDVQuery(ctx context.Context, req DVQueryRequest) (*DVQueryCreated, error) {
	var resp dataEnvelope[DVQueryCreated]
	if err := c.post(ctx, "/dv/init-query", req, &resp); err != nil {
		return nil, fmt.Errorf("creating deep visibility query: %w", err)
	}
	return &resp.Data, nil
}

// DVQueryStatus reports the current lifecycle state of a query.
func (c *Client) DVQueryStatus(ctx context.Context, queryID string) (*DVQueryStatus, error) {
	q := newParams()
	q.set("queryId", queryID)

	var resp dataEnvelope[DVQueryStatus]
	if err := c.get(ctx, "/dv/query-status", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("getting status of query %q: %w", queryID, err)
	}
	return &resp.Data, nil
}

// DVEvents retrieves one page of events from a finished query.
func (c *Client) DVEvents(ctx context.Context, queryID string, limit int, cursor string) (*ListResult[DVEvent], error) {
	q := newParams()
	q.set("queryId", queryID)
	q.setLimit(limit)
	q.set("cursor", cursor)

	var resp page[DVEvent]
	if err := c.get(ctx, "/dv/events", q.Values, &resp); err != nil {
		return nil, fmt.Errorf("getting events for query %q: %w", queryID, err)
	}
	return resultFrom(resp), nil
}
