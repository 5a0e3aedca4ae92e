// mcp.go defines the worthit_parse and worthit_explain MCP tools.

package phrase

import (
	"context"

	"github.com/jpl-au/worthit/extension"
	"github.com/jpl-au/worthit/internal/duration"
	"github.com/jpl-au/worthit/internal/explain"
	"github.com/jpl-au/worthit/internal/log"
	"github.com/jpl-au/worthit/internal/validate"
	"github.com/mark3labs/mcp-go/mcp"
)

func tools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("worthit_parse",
				mcp.WithDescription("Convert a natural-language duration ('every second month', 'twice a week', '90m') to a number"),
				mcp.WithString("phrase", mcp.Required(), mcp.Description("Duration phrase or shorthand")),
				mcp.WithString("unit", mcp.Description("Output unit (milliseconds, seconds, minutes, hours, days, weeks, months, years); default output.unit")),
			),
			Handler: parseTool,
		},
		{
			Tool: mcp.NewTool("worthit_explain",
				mcp.WithDescription("Explain how each word of a duration phrase is read and why it fails to parse"),
				mcp.WithString("phrase", mcp.Required(), mcp.Description("Duration phrase or shorthand")),
			),
			Handler: explainTool,
		},
	}
}

// parseTool handles worthit_parse tool calls.
func parseTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := extCtx.Config()

	phrase, err := req.RequireString("phrase")
	if err != nil {
		return mcp.NewToolResultError("phrase is required"), nil //nolint:nilerr
	}

	unit := cfg.Unit()
	if s := extension.StringArg(req, "unit", ""); s != "" {
		if unit, err = duration.ParseUnit(s); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	l := log.Event("mcp:worthit_parse", "parse").Input(phrase).Unit(unit.String())

	if err := validate.Phrase(phrase, cfg.MaxPhrase()); err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	v, ok := duration.Parse(phrase, &duration.Config{OutputUnit: unit})
	if !ok {
		l.Write(validate.ErrUnparsable)
		return mcp.NewToolResultError(validate.ErrUnparsable.Error() + " (use worthit_explain to see why)"), nil
	}
	l.Result(v).Write(nil)

	return extension.JSONResult(ParseResult{Phrase: phrase, Unit: unit.String(), Value: v})
}

// explainTool handles worthit_explain tool calls.
func explainTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phrase, err := req.RequireString("phrase")
	if err != nil {
		return mcp.NewToolResultError("phrase is required"), nil //nolint:nilerr
	}

	l := log.Event("mcp:worthit_explain", "explain").Input(phrase)

	if err := validate.Phrase(phrase, extCtx.Config().MaxPhrase()); err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep := explain.Explain(phrase)
	if rep.OK() {
		l.Result(*rep.Millis)
	}
	l.Detail("reasons", rep.Reasons).Write(nil)

	return extension.JSONResult(rep)
}
