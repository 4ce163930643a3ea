package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/autotestid/autotestid-cli/internal/strategy"
)

func (s *Server) handleWorkflow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, isErr := workflowResult(request.GetArguments(), s.templates)
	if isErr {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}

// workflowResult runs the tool logic on a raw argument map. It returns the
// response text and whether it is an error result, so the MCP wrapper above
// stays trivial.
func workflowResult(params map[string]interface{}, templates strategy.TemplateSource) (string, bool) {
	html := StringParam(params, "html_content", "")
	if strings.TrimSpace(html) == "" {
		return "html_content is required and must not be blank", true
	}

	strategyArg := StringParam(params, "strategy", "")
	if strategyArg == "" {
		if detected := strategy.Detect(StringParam(params, "user_request", "")); detected != strategy.Unset {
			strategyArg = string(detected)
		}
	}

	slog.Debug("workflow tool call", "html_bytes", len(html), "strategy", strategyArg)
	return strategy.Run(html, strategyArg, templates), false
}

// StringParam reads a string argument from a tool call's argument map,
// returning def when absent or not a string.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}
