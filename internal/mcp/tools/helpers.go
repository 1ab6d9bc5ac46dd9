// Package tools contains MCP tool implementations for the SentinelOne API.
package tools

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders an RFC 3339 timestamp as a relative age ("12m ago",
// "3h ago", "2d ago"). Unparseable input is returned as-is.
func FormatTimeAgo(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}

	diff := time.Since(t)
	if diff < 0 {
		return "just now"
	}

	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	switch {
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	default:
		return fmt.Sprintf("%dd ago", days)
	}
}

// TruncatePath shortens a filesystem path to at most max runes, keeping the
// tail, which carries the file name.
func TruncatePath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	return "..." + path[len(path)-max+3:]
}

// cursorHint tells the caller how to fetch the next page; empty when the
// page was the last one.
func cursorHint(nextCursor string) string {
	if nextCursor == "" {
		return ""
	}
	return fmt.Sprintf("More results available. Pass cursor %q to the next call.", nextCursor)
}

// orUnknown substitutes a placeholder for absent display values.
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
