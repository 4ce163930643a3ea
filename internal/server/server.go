// Package server exposes the annotation workflow as an MCP tool.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/autotestid/autotestid-cli/internal/prompt"
	"github.com/autotestid/autotestid-cli/internal/strategy"
	"github.com/autotestid/autotestid-cli/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport     string
	Port          int
	TemplatePaths []string
}

// Server wraps the MCP server with the workflow template source.
type Server struct {
	templates strategy.TemplateSource
	mcp       *mcpserver.MCPServer
}

// New creates and configures an MCP server exposing the autotestid tool.
func New(cfg Config) *Server {
	s := &Server{
		templates: prompt.NewLoader(cfg.TemplatePaths...),
	}

	s.mcp = mcpserver.NewMCPServer(
		"autotestid-cli",
		version.Version,
	)

	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("autotestid_workflow",
			mcp.WithDescription("Analyze HTML markup and suggest test-locator attributes (data-testid or ARIA) for its interactive elements"),
			mcp.WithString("html_content", mcp.Required(), mcp.Description("Raw HTML to analyze")),
			mcp.WithString("user_request", mcp.Description("Free-form instruction; may name the strategy (aria-first or test-attribute-first)")),
			mcp.WithString("strategy", mcp.Description("Locator strategy: aria-first or test-attribute-first")),
		),
		s.handleWorkflow,
	)
}
