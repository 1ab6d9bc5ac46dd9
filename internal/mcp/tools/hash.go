package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HashReputationInput is the input for s1_get_hash_reputation.
type HashReputationInput struct {
	Hash string `json:"hash" jsonschema:"SHA1 (40 hex chars) or SHA256 (64 hex chars) file hash"`
}

// HashReputationOutput is the output for s1_get_hash_reputation.
type HashReputationOutput struct {
	Hash    string `json:"hash"`
	Rank    int    `json:"rank"`
	Verdict string `json:"verdict"`
}

// ToolHashReputation looks up the reputation rank for a file hash. Results
// are cached, so repeated lookups of the same hash do not hit the console.
func ToolHashReputation(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input HashReputationInput) (*sdkmcp.CallToolResult, HashReputationOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input HashReputationInput) (*sdkmcp.CallToolResult, HashReputationOutput, error) {
		if err := validateHash(input.Hash); err != nil {
			return nil, HashReputationOutput{}, err
		}

		rep, err := d.Reputation.Lookup(ctx, input.Hash)
		if err != nil {
			return nil, HashReputationOutput{}, WrapS1Error(err)
		}

		return nil, HashReputationOutput{
			Hash:    input.Hash,
			Rank:    rep.Rank,
			Verdict: rankVerdict(rep.Rank),
		}, nil
	}
}

// validateHash accepts SHA1 and SHA256 digests only. MD5 lookups are not
// supported by the reputation endpoint.
func validateHash(hash string) error {
	if hash == "" {
		return ErrInvalidInput("hash is required")
	}
	if len(hash) != 40 && len(hash) != 64 {
		return ErrInvalidInput(fmt.Sprintf("hash must be SHA1 (40 chars) or SHA256 (64 chars), got %d chars", len(hash)))
	}
	for _, r := range hash {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return ErrInvalidInput("hash must contain only hexadecimal characters")
		}
	}
	return nil
}

// rankVerdict maps the 0..10 rank to a coarse verdict the way the console
// presents it.
func rankVerdict(rank int) string {
	switch {
	case rank <= 2:
		return "likely benign"
	case rank <= 6:
		return "suspicious"
	default:
		return "likely malicious"
	}
}
