// Package dv drives the Deep Visibility asynchronous query lifecycle: a
// submitted query runs server-side through RUNNING into one of FINISHED,
// FAILED, or CANCELED, and results may only be paged once it has finished.
//
// Submission polling is a bounded wait, not indefinite blocking: after the
// attempt ceiling the caller gets a still-running outcome carrying the query
// ID and retrieves events later through [Engine.FetchEvents], which re-checks
// status on every call. The engine keeps no state between calls; the query's
// lifecycle lives server-side, addressed by its opaque ID, so concurrent
// callers polling the same query proceed independently.
package dv

import (
	"context"
	"fmt"
	"time"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// Status is the server-side lifecycle state of a query. RUNNING is the only
// non-terminal state after submission.
type Status string

const (
	StatusRunning  Status = "RUNNING"
	StatusFinished Status = "FINISHED"
	StatusFailed   Status = "FAILED"
	StatusCanceled Status = "CANCELED"
)

// Defaults for the bounded submission poll and event paging.
const (
	DefaultPollInterval = time.Second
	DefaultMaxAttempts  = 30
	DefaultEventLimit   = 50
	MaxEventLimit       = 100
)

// API is the slice of the SentinelOne client the engine drives.
type API interface {
	CreateDVQuery(ctx context.Context, req client.DVQueryRequest) (*client.DVQueryCreated, error)
	DVQueryStatus(ctx context.Context, queryID string) (*client.DVQueryStatus, error)
	DVEvents(ctx context.Context, queryID string, limit int, cursor string) (*client.ListResult[client.DVEvent], error)
}

// Engine submits Deep Visibility queries and pages their results.
type Engine struct {
	api          API
	pollInterval time.Duration
	maxAttempts  int
	sleep        func(ctx context.Context, d time.Duration) error
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithPollInterval sets the delay between status checks.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.pollInterval = d
		}
	}
}

// WithMaxAttempts sets the status-check ceiling for submission polling.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithSleep replaces the delay function. Tests inject an instant sleep so
// the poll loop's exit branches are checked without driving real timers.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Engine) {
		e.sleep = fn
	}
}

// New creates an engine over api.
func New(api API, opts ...Option) *Engine {
	e := &Engine{
		api:          api,
		pollInterval: DefaultPollInterval,
		maxAttempts:  DefaultMaxAttempts,
		sleep:        sleepContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// QueryRequest describes a Deep Visibility search to submit.
type QueryRequest struct {
	Query      string
	FromDate   string
	ToDate     string
	SiteIDs    []string
	GroupIDs   []string
	AccountIDs []string
}

// AwaitOutcome reports how far the bounded submission poll got. When
// StillRunning is set the query outlived the poll window; that is a valid
// intermediate outcome, not a failure, and the caller retrieves events
// later with the query ID.
type AwaitOutcome struct {
	QueryID      string
	Status       Status
	StillRunning bool
	// Attempts counts status checks performed.
	Attempts int
}

// SubmitAndAwait submits the query and polls its status, first check
// immediate and then once per poll interval, up to the attempt ceiling.
// A rejected submission fails with *SubmissionError; FAILED and CANCELED
// are terminal and fail with *JobFailedError and *JobCanceledError the
// moment they are observed.
func (e *Engine) SubmitAndAwait(ctx context.Context, req QueryRequest) (*AwaitOutcome, error) {
	created, err := e.api.CreateDVQuery(ctx, client.DVQueryRequest{
		Query:      req.Query,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		SiteIDs:    req.SiteIDs,
		GroupIDs:   req.GroupIDs,
		AccountIDs: req.AccountIDs,
	})
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	queryID := created.QueryID

	for attempt := 1; ; attempt++ {
		st, err := e.api.DVQueryStatus(ctx, queryID)
		if err != nil {
			return nil, fmt.Errorf("checking status of query %s: %w", queryID, err)
		}

		switch Status(st.Status) {
		case StatusFinished:
			return &AwaitOutcome{QueryID: queryID, Status: StatusFinished, Attempts: attempt}, nil
		case StatusFailed:
			return nil, &JobFailedError{QueryID: queryID, Detail: st.ResponseError}
		case StatusCanceled:
			// Terminal in both the polling and retrieval paths; only a
			// resubmission can produce results.
			return nil, &JobCanceledError{QueryID: queryID}
		}

		if attempt >= e.maxAttempts {
			return &AwaitOutcome{
				QueryID:      queryID,
				Status:       StatusRunning,
				StillRunning: true,
				Attempts:     attempt,
			}, nil
		}
		if err := e.sleep(ctx, e.pollInterval); err != nil {
			return nil, err
		}
	}
}

// EventsOutcome is the result of one FetchEvents call. When Ready is false
// the query was still running, no page was fetched, and Progress carries
// the remote-reported completion percentage (0 when unavailable).
type EventsOutcome struct {
	QueryID    string
	Ready      bool
	Progress   int
	Events     []client.DVEvent
	NextCursor string
	TotalItems int
}

// FetchEvents retrieves one page of results from a query. Status is
// re-checked on every call before paging: the state can change between
// calls, so a page is never fetched on a stale FINISHED observation.
// limit defaults to DefaultEventLimit and may not exceed MaxEventLimit.
func (e *Engine) FetchEvents(ctx context.Context, queryID string, limit int, cursor string) (*EventsOutcome, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		return nil, fmt.Errorf("limit %d exceeds maximum of %d", limit, MaxEventLimit)
	}

	st, err := e.api.DVQueryStatus(ctx, queryID)
	if err != nil {
		return nil, fmt.Errorf("checking status of query %s: %w", queryID, err)
	}

	switch Status(st.Status) {
	case StatusRunning:
		return &EventsOutcome{QueryID: queryID, Progress: st.ProgressStatus}, nil
	case StatusFailed:
		return nil, &JobFailedError{QueryID: queryID, Detail: st.ResponseError}
	case StatusCanceled:
		return nil, &JobCanceledError{QueryID: queryID}
	}

	events, err := e.api.DVEvents(ctx, queryID, limit, cursor)
	if err != nil {
		return nil, fmt.Errorf("fetching events for query %s: %w", queryID, err)
	}

	return &EventsOutcome{
		QueryID:    queryID,
		Ready:      true,
		Progress:   100,
		Events:     events.Items,
		NextCursor: events.NextCursor,
		TotalItems: events.TotalItems,
	}, nil
}
