// resources.go implements MCP resource handlers for the embedded guides.
//
// Resources give LLM clients read-only context without a tool call. URIs
// follow worthit://guide for the index and worthit://guide/{topic} for a
// single page, matching "worthit guide [topic]".

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/worthit/guide"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrInvalidURI indicates a malformed resource URI, helping clients debug
// URI construction issues.
var ErrInvalidURI = errors.New("invalid URI")

const guideURI = "worthit://guide"

// registerResources adds the guide index and per-topic guide pages.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(
			guideURI,
			"Guide",
			mcp.WithResourceDescription("worthit usage guide index"),
			mcp.WithMIMEType("text/markdown"),
		),
		readGuide,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			guideURI+"/{topic}",
			"Guide Topic",
			mcp.WithTemplateDescription("A guide page: phrases, shorthand, units, roi, config or serve"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		readGuide,
	)
}

// readGuide handles both guide resource forms.
func readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	topic, err := parseGuideURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from a guide URI. The index URI yields
// an empty topic.
func parseGuideURI(uri string) (string, error) {
	if uri == guideURI || uri == guideURI+"/" {
		return "", nil
	}
	topic, ok := strings.CutPrefix(uri, guideURI+"/")
	if !ok || strings.Contains(topic, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return topic, nil
}
