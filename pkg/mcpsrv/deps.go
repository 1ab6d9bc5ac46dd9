package mcpsrv

import (
	"github.com/halcyonsec/s1-mcp/internal/config"
	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// Deps contains the dependencies available to custom tools.
// This gives custom tools access to the same API client and configuration
// as builtin tools.
type Deps struct {
	Client *client.Client
	Config *config.Config
}
