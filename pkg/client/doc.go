// Package client provides a typed client for the SentinelOne management
// console API (REST v2.1 plus the unified-alerts GraphQL endpoint).
//
// Every outbound call is bounded by a fixed timeout, authenticated with the
// configured API token, and classified on failure into [APIError],
// [TimeoutError], or a wrapped transport error. Error text returned to
// callers never contains the API token.
//
// List operations are cursor-paginated: pass the NextCursor from one page to
// request the next. Filters that are unset are omitted from the outbound
// query entirely, never sent as empty values.
package client
