package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autotestid/autotestid-cli/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the annotation workflow",
	Long: `Start a Model Context Protocol (MCP) server that exposes the autotestid
workflow as a tool. AI agents pass HTML and get back locator suggestions.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  autotestid-cli serve
  autotestid-cli serve --transport streamable-http --port 8080
  autotestid-cli serve --template ./prompts/autotestid_workflow.md`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	addTemplateFlag(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	paths, _ := cmd.Flags().GetStringArray("template")

	srvCfg := server.Config{
		Transport:     transport,
		Port:          port,
		TemplatePaths: append(paths, cfg.TemplatePaths...),
	}

	srv := server.New(srvCfg)
	if err := srv.Serve(srvCfg); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
