package tools

import (
	"github.com/halcyonsec/s1-mcp/internal/config"
	"github.com/halcyonsec/s1-mcp/internal/dv"
	"github.com/halcyonsec/s1-mcp/internal/reputation"
	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Client     *client.Client
	Config     *config.Config
	DV         *dv.Engine
	Reputation *reputation.Cache
}

// List-limit policy: inputs above a resource's maximum are rejected with
// INVALID_INPUT before any remote call, never silently clamped.
const (
	defaultListLimit   = 25
	maxListLimit       = 100
	maxThreatListLimit = 1000
	maxAlertListLimit  = 50
)

// resolveLimit applies the default and enforces the per-resource maximum.
func resolveLimit(limit, def, max int) (int, error) {
	if limit <= 0 {
		return def, nil
	}
	if limit > max {
		return 0, ErrInvalidInput(limitExceededMessage(limit, max))
	}
	return limit, nil
}
