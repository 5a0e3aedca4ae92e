package extension

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name  string
	tools []MCPTool
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }
func (e testExtension) MCPTools() []MCPTool        { return e.tools }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	assert.Panics(t, func() { Register(testExtension{name: name}) })
}

func TestRegistry_Lookup(t *testing.T) {
	noop := func(context.Context, Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	}
	Register(testExtension{
		name:  "test-lookup",
		tools: []MCPTool{{Tool: mcp.NewTool("test_lookup_tool"), Handler: noop}},
	})

	require.NotNil(t, Get("test-lookup"))
	assert.Nil(t, Get("test-missing"))
	assert.Contains(t, Names(), "test-lookup")

	var found bool
	for _, tool := range Tools() {
		if tool.Tool.Name == "test_lookup_tool" {
			found = true
		}
	}
	assert.True(t, found)
}
