// tools_guide.go gives LLM clients the same embedded guides the CLI shows.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/guide"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles worthit_guide tool calls.
func getGuide(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := extension.StringArg(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:worthit_guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}
	return mcp.NewToolResultText(content), nil
}
