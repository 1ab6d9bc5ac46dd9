// Package mcpsrv provides an extensible MCP server for the SentinelOne
// management console.
//
// This package exposes a high-level API for creating and running an MCP
// server with all builtin SentinelOne tools: threat triage and mitigation,
// agent management and isolation, unified alerts, Deep Visibility telemetry
// queries, and fleet inventory. Users can extend the server with custom
// tools using functional options.
//
// # Basic Usage
//
// Create a server with default configuration:
//
//	c := client.New(apiBase, apiToken)
//	server, err := mcpsrv.NewServer(c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Close()
//	server.Run(ctx)
//
// # Extension
//
// Add custom tools using MCP SDK types directly:
//
//	import mcp "github.com/modelcontextprotocol/go-sdk/mcp"
//
//	type MyInput struct {
//	    Query string `json:"query"`
//	}
//
//	type MyOutput struct {
//	    Count int `json:"count"`
//	}
//
//	func myHandler(ctx context.Context, req *mcp.CallToolRequest, input MyInput) (*mcp.CallToolResult, MyOutput, error) {
//	    return nil, MyOutput{Count: 42}, nil
//	}
//
//	server, err := mcpsrv.NewServer(
//	    c,
//	    mcpsrv.WithTool(&mcp.Tool{Name: "my_tool", Description: "My tool"}, myHandler),
//	)
//
// # Configuration
//
// Configure logging and other options:
//
//	server, err := mcpsrv.NewServer(
//	    c,
//	    mcpsrv.WithLogLevel("debug"),
//	    mcpsrv.WithLogFile("/var/log/s1-mcp.log"),
//	)
package mcpsrv
